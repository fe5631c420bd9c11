package ports

import (
	"context"

	"github.com/jhoicas/Hospitalario-api/internal/application/dto"
)

// ClinicalAIService define el puerto de salida para la asistencia clínica por IA.
// Cualquier adaptador (Anthropic, Gemini, mock) debe implementar esta interfaz.
// El dominio/aplicación solo conoce este contrato, no la implementación concreta.
type ClinicalAIService interface {
	// SuggestDiagnosisDraft genera un borrador de diagnóstico a partir de
	// síntomas, notas clínicas e historia del paciente.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	SuggestDiagnosisDraft(ctx context.Context, in dto.DiagnosisDraftRequest) (*dto.DiagnosisDraftDTO, error)

	// StructureTranscript convierte la transcripción libre de un dictado de voz
	// en una nota clínica estructurada (SOAP).
	StructureTranscript(ctx context.Context, transcript string) (*dto.StructuredNoteDTO, error)
}
