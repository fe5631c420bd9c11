package admission

import (
	"context"
	"fmt"

	"github.com/jhoicas/Hospitalario-api/internal/domain"
	"github.com/jhoicas/Hospitalario-api/internal/domain/repository"
)

// SummaryPDFUseCase genera el resumen imprimible de una admisión
// (solicitud, pabellón/cama asignados y alta si existe).
type SummaryPDFUseCase struct {
	admissionRepo repository.AdmissionRepository
	patientRepo   repository.PatientRepository
	wardRepo      repository.WardRepository
	bedRepo       repository.BedRepository
	generator     SummaryPDFGenerator
}

// NewSummaryPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewSummaryPDFUseCase(
	admissionRepo repository.AdmissionRepository,
	patientRepo repository.PatientRepository,
	wardRepo repository.WardRepository,
	bedRepo repository.BedRepository,
	generator SummaryPDFGenerator,
) *SummaryPDFUseCase {
	return &SummaryPDFUseCase{
		admissionRepo: admissionRepo,
		patientRepo:   patientRepo,
		wardRepo:      wardRepo,
		bedRepo:       bedRepo,
		generator:     generator,
	}
}

// DownloadSummaryPDF recupera admisión, paciente y pabellón y genera el PDF.
// Retorna (pdfBytes, filename, nil) o domain.ErrNotFound si algo falta.
func (uc *SummaryPDFUseCase) DownloadSummaryPDF(ctx context.Context, admissionID string) ([]byte, string, error) {
	adm, err := uc.admissionRepo.GetByID(admissionID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener admisión: %w", err)
	}
	if adm == nil {
		return nil, "", domain.ErrNotFound
	}
	patient, err := uc.patientRepo.GetByID(adm.PatientID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener paciente: %w", err)
	}
	if patient == nil {
		return nil, "", domain.ErrNotFound
	}
	ward, err := uc.wardRepo.GetByID(adm.WardID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener pabellón: %w", err)
	}
	if ward == nil {
		return nil, "", domain.ErrNotFound
	}

	bedNumber := ""
	if adm.BedID != nil {
		bed, err := uc.bedRepo.GetByID(*adm.BedID)
		if err != nil {
			return nil, "", fmt.Errorf("pdf: obtener cama: %w", err)
		}
		if bed != nil {
			bedNumber = bed.BedNumber
		}
	}

	pdfBytes, err := uc.generator.GenerateAdmissionSummary(ctx, adm, patient, ward, bedNumber)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar resumen: %w", err)
	}
	filename := fmt.Sprintf("admision-%s.pdf", adm.AdmissionNumber)
	return pdfBytes, filename, nil
}
