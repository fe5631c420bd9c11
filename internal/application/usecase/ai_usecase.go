package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Hospitalario-api/internal/application/dto"
	"github.com/jhoicas/Hospitalario-api/internal/application/ports"
	"github.com/jhoicas/Hospitalario-api/internal/domain"
)

// AIUseCase orquesta la asistencia clínica por IA (borrador de diagnóstico y
// estructuración de transcripciones). Aplica un timeout de pared por llamada
// para que las latencias externas no bloqueen los goroutines del servidor;
// el vencimiento se reporta al handler como timeout distinguible (504).
type AIUseCase struct {
	ai      ports.ClinicalAIService
	timeout time.Duration
}

// NewAIUseCase construye el caso de uso inyectando el puerto ClinicalAIService.
func NewAIUseCase(ai ports.ClinicalAIService, timeout time.Duration) *AIUseCase {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &AIUseCase{ai: ai, timeout: timeout}
}

// SuggestDiagnosisDraft valida la entrada y delega al LLM con timeout.
func (uc *AIUseCase) SuggestDiagnosisDraft(ctx context.Context, in dto.DiagnosisDraftRequest) (*dto.DiagnosisDraftDTO, error) {
	if in.Symptoms == "" && in.ClinicalNotes == "" {
		return nil, domain.ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	result, err := uc.ai.SuggestDiagnosisDraft(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("borrador de diagnóstico: %w", err)
	}
	return result, nil
}

// StructureTranscript valida la transcripción y delega al LLM con timeout.
func (uc *AIUseCase) StructureTranscript(ctx context.Context, in dto.StructureTranscriptRequest) (*dto.StructuredNoteDTO, error) {
	if in.Transcript == "" {
		return nil, domain.ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	result, err := uc.ai.StructureTranscript(ctx, in.Transcript)
	if err != nil {
		return nil, fmt.Errorf("estructurar transcripción: %w", err)
	}
	return result, nil
}
