package admission

import (
	"fmt"
	"time"
)

// NewAdmissionNumber genera el número legible de admisión:
// ADM-<año>-<últimos 6 dígitos de epoch ms>. La probabilidad de colisión no es
// cero y no se reintenta; el constraint UNIQUE de la tabla la haría visible.
func NewAdmissionNumber(now time.Time) string {
	suffix := now.UnixMilli() % 1_000_000
	return fmt.Sprintf("ADM-%d-%06d", now.Year(), suffix)
}
