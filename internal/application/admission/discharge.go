package admission

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Hospitalario-api/internal/domain"
	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
	"github.com/jhoicas/Hospitalario-api/internal/domain/repository"
)

// DischargeAdmissionUseCase da de alta una admisión aprobada: el espejo de la
// aprobación, en una sola transacción (alta, liberación de cama, contador +1).
type DischargeAdmissionUseCase struct {
	txRunner      TxRunner
	admissionRepo repository.AdmissionRepository
	notifier      Notifier
}

// NewDischargeAdmissionUseCase construye el caso de uso.
func NewDischargeAdmissionUseCase(
	txRunner TxRunner,
	admissionRepo repository.AdmissionRepository,
	notifier Notifier,
) *DischargeAdmissionUseCase {
	return &DischargeAdmissionUseCase{
		txRunner:      txRunner,
		admissionRepo: admissionRepo,
		notifier:      notifier,
	}
}

// Discharge marca la admisión como discharged, libera la cama y devuelve la
// disponibilidad al pabellón.
func (uc *DischargeAdmissionUseCase) Discharge(ctx context.Context, admissionID, dischargedBy string) error {
	if admissionID == "" || dischargedBy == "" {
		return domain.ErrInvalidInput
	}

	adm, err := uc.admissionRepo.GetByID(admissionID)
	if err != nil {
		return fmt.Errorf("alta: buscar admisión: %w", err)
	}
	if adm == nil {
		return domain.ErrNotFound
	}
	if adm.Status != entity.AdmissionStatusApproved || adm.BedID == nil {
		return domain.ErrConflict
	}

	bedID := *adm.BedID
	now := time.Now()
	err = uc.txRunner.RunAdmission(ctx, func(
		admissionRepo repository.AdmissionRepository,
		bedRepo repository.BedRepository,
		wardRepo repository.WardRepository,
	) error {
		if err := admissionRepo.MarkDischarged(adm.ID, now); err != nil {
			return err
		}
		if err := bedRepo.Release(bedID); err != nil {
			return err
		}
		return wardRepo.IncrementAvailableBeds(adm.WardID)
	})
	if err != nil {
		return err
	}

	uc.notifier.Notify(
		adm.AttendingDoctorID,
		"Alta registrada",
		fmt.Sprintf("La admisión %s fue dada de alta", adm.AdmissionNumber),
		entity.NotificationTypeAdmissionApproved,
	)
	return nil
}
