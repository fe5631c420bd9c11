package pharmacy

import (
	"context"

	"github.com/jhoicas/Hospitalario-api/internal/domain/repository"
)

// TxRunner ejecuta el traslado dentro de una transacción de BD, pasando
// repositorios atados a esa tx. El decremento de farmacia y el incremento del
// pabellón conservan la cantidad porque comparten transacción; la fila de
// auditoría se inserta en la misma.
type TxRunner interface {
	RunTransfer(ctx context.Context, fn func(
		requestRepo repository.SupplyRequestRepository,
		stockRepo repository.PharmacyStockRepository,
		supplyRepo repository.WardSupplyRepository,
		auditRepo repository.PharmacyTransactionRepository,
	) error) error
}

// Notifier efecto no crítico; los fallos se loguean y no se propagan.
type Notifier interface {
	Notify(userID, title, message, notificationType string)
}
