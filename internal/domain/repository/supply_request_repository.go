package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
)

// SupplyRequestRepository define el puerto para las solicitudes de insumos.
type SupplyRequestRepository interface {
	Create(request *entity.SupplyRequest) error
	GetByID(id string) (*entity.SupplyRequest, error)
	List(wardID, status string, limit, offset int) ([]*entity.SupplyRequest, error)
	// MarkApproved fija approved_by, delivered_quantity y delivered_date de
	// forma condicional (WHERE request_status = 'pending'). Cero filas
	// afectadas se traduce en domain.ErrAlreadyProcessed: re-aprobar una
	// solicitud ya procesada nunca vuelve a mover stock.
	MarkApproved(id, approvedBy string, delivered decimal.Decimal, date time.Time) error
}
