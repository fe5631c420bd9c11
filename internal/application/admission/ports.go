package admission

import (
	"context"

	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
	"github.com/jhoicas/Hospitalario-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que admisión, cama y contador del
// pabellón cambian juntos o no cambian: el estado contradictorio
// "admisión aprobada con cama X pero cama X disponible" no puede ocurrir.
type TxRunner interface {
	RunAdmission(ctx context.Context, fn func(
		admissionRepo repository.AdmissionRepository,
		bedRepo repository.BedRepository,
		wardRepo repository.WardRepository,
	) error) error
}

// Notifier efecto no crítico: la implementación captura y loguea los fallos,
// nunca los propaga ni reintenta de forma síncrona.
type Notifier interface {
	Notify(userID, title, message, notificationType string)
}

// SummaryPDFGenerator genera el resumen imprimible de una admisión.
type SummaryPDFGenerator interface {
	GenerateAdmissionSummary(
		ctx context.Context,
		adm *entity.Admission,
		patient *entity.Patient,
		ward *entity.Ward,
		bedNumber string,
	) ([]byte, error)
}
