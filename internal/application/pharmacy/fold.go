package pharmacy

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldSupplyName normaliza el nombre de un insumo para el vínculo best-effort
// solicitud -> stock de farmacia: quita tildes (NFD + eliminación de marcas),
// pasa a minúsculas y recorta espacios. Así "Suero Fisiológico" y
// "suero fisiologico" resuelven al mismo ítem.
func FoldSupplyName(name string) string {
	// El transformer no es seguro para uso concurrente; se construye por llamada.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}
	return strings.ToLower(strings.Join(strings.Fields(folded), " "))
}
