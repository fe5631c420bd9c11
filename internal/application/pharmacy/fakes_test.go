package pharmacy_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Hospitalario-api/internal/application/pharmacy"
	"github.com/jhoicas/Hospitalario-api/internal/domain"
	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
	"github.com/jhoicas/Hospitalario-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. Los updates condicionales replican la semántica de cero
// filas afectadas -> error de regla de negocio, y el TxRunner restaura el
// estado previo cuando el callback falla.
// ──────────────────────────────────────────────────────────────────────────────

type memRequests struct {
	items map[string]*entity.SupplyRequest
}

func newMemRequests() *memRequests {
	return &memRequests{items: map[string]*entity.SupplyRequest{}}
}

func (m *memRequests) Create(r *entity.SupplyRequest) error {
	cp := *r
	m.items[r.ID] = &cp
	return nil
}

func (m *memRequests) GetByID(id string) (*entity.SupplyRequest, error) {
	r, found := m.items[id]
	if !found {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m *memRequests) List(wardID, status string, limit, offset int) ([]*entity.SupplyRequest, error) {
	var list []*entity.SupplyRequest
	for _, r := range m.items {
		if (wardID == "" || r.WardID == wardID) && (status == "" || r.Status == status) {
			cp := *r
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (m *memRequests) MarkApproved(id, approvedBy string, delivered decimal.Decimal, date time.Time) error {
	r, found := m.items[id]
	if !found || r.Status != entity.SupplyRequestStatusPending {
		return domain.ErrAlreadyProcessed
	}
	r.Status = entity.SupplyRequestStatusApproved
	r.ApprovedBy = &approvedBy
	r.DeliveredQuantity = &delivered
	r.DeliveredDate = &date
	return nil
}

func (m *memRequests) snapshot() map[string]entity.SupplyRequest {
	s := make(map[string]entity.SupplyRequest, len(m.items))
	for k, v := range m.items {
		s[k] = *v
	}
	return s
}

func (m *memRequests) restore(s map[string]entity.SupplyRequest) {
	m.items = make(map[string]*entity.SupplyRequest, len(s))
	for k, v := range s {
		cp := v
		m.items[k] = &cp
	}
}

type memPharmacyStock struct {
	items   map[string]*entity.PharmacyStock
	findErr error
}

func newMemPharmacyStock() *memPharmacyStock {
	return &memPharmacyStock{items: map[string]*entity.PharmacyStock{}}
}

func (m *memPharmacyStock) Create(s *entity.PharmacyStock) error {
	cp := *s
	m.items[s.ID] = &cp
	return nil
}

func (m *memPharmacyStock) GetByID(id string) (*entity.PharmacyStock, error) {
	s, found := m.items[id]
	if !found {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *memPharmacyStock) GetForUpdate(id string) (*entity.PharmacyStock, error) {
	return m.GetByID(id)
}

func (m *memPharmacyStock) FindByFoldedName(folded string) (*entity.PharmacyStock, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, s := range m.items {
		if pharmacy.FoldSupplyName(s.SupplyName) == folded {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memPharmacyStock) List(limit, offset int) ([]*entity.PharmacyStock, error) {
	return nil, nil
}

func (m *memPharmacyStock) ListLow() ([]*entity.PharmacyStock, error) {
	var list []*entity.PharmacyStock
	for _, s := range m.items {
		if s.IsLow() {
			cp := *s
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (m *memPharmacyStock) Decrement(id string, quantity decimal.Decimal) error {
	s, found := m.items[id]
	if !found || s.CurrentStock.LessThan(quantity) {
		return domain.ErrInsufficientStock
	}
	s.CurrentStock = s.CurrentStock.Sub(quantity)
	return nil
}

func (m *memPharmacyStock) snapshot() map[string]entity.PharmacyStock {
	s := make(map[string]entity.PharmacyStock, len(m.items))
	for k, v := range m.items {
		s[k] = *v
	}
	return s
}

func (m *memPharmacyStock) restore(s map[string]entity.PharmacyStock) {
	m.items = make(map[string]*entity.PharmacyStock, len(s))
	for k, v := range s {
		cp := v
		m.items[k] = &cp
	}
}

type memWardSupplies struct {
	items map[string]*entity.WardSupply
}

func newMemWardSupplies() *memWardSupplies {
	return &memWardSupplies{items: map[string]*entity.WardSupply{}}
}

func (m *memWardSupplies) Create(s *entity.WardSupply) error {
	cp := *s
	m.items[s.ID] = &cp
	return nil
}

func (m *memWardSupplies) GetByID(id string) (*entity.WardSupply, error) {
	s, found := m.items[id]
	if !found {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *memWardSupplies) ListByWard(wardID string) ([]*entity.WardSupply, error) {
	var list []*entity.WardSupply
	for _, s := range m.items {
		if s.WardID == wardID {
			cp := *s
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (m *memWardSupplies) AddStock(id string, quantity decimal.Decimal) error {
	s, found := m.items[id]
	if !found {
		return domain.ErrNotFound
	}
	s.CurrentStock = s.CurrentStock.Add(quantity)
	return nil
}

func (m *memWardSupplies) snapshot() map[string]entity.WardSupply {
	s := make(map[string]entity.WardSupply, len(m.items))
	for k, v := range m.items {
		s[k] = *v
	}
	return s
}

func (m *memWardSupplies) restore(s map[string]entity.WardSupply) {
	m.items = make(map[string]*entity.WardSupply, len(s))
	for k, v := range s {
		cp := v
		m.items[k] = &cp
	}
}

type memAudit struct {
	rows []*entity.PharmacyTransaction
}

func (m *memAudit) Create(tx *entity.PharmacyTransaction) error {
	cp := *tx
	m.rows = append(m.rows, &cp)
	return nil
}

func (m *memAudit) List(limit, offset int) ([]*entity.PharmacyTransaction, error) {
	return m.rows, nil
}

// memTxRunner restaura requests, stock y supplies si el callback falla. Las
// filas de auditoría se truncan al largo previo: un rollback tampoco deja
// rastro a medias.
type memTxRunner struct {
	requests *memRequests
	stock    *memPharmacyStock
	supplies *memWardSupplies
	audit    *memAudit
}

var _ pharmacy.TxRunner = (*memTxRunner)(nil)

func (t *memTxRunner) RunTransfer(ctx context.Context, fn func(
	requestRepo repository.SupplyRequestRepository,
	stockRepo repository.PharmacyStockRepository,
	supplyRepo repository.WardSupplyRepository,
	auditRepo repository.PharmacyTransactionRepository,
) error) error {
	reqSnap := t.requests.snapshot()
	stockSnap := t.stock.snapshot()
	supplySnap := t.supplies.snapshot()
	auditLen := len(t.audit.rows)
	if err := fn(t.requests, t.stock, t.supplies, t.audit); err != nil {
		t.requests.restore(reqSnap)
		t.stock.restore(stockSnap)
		t.supplies.restore(supplySnap)
		t.audit.rows = t.audit.rows[:auditLen]
		return err
	}
	return nil
}

type recordingNotifier struct {
	sent []sentNotification
}

type sentNotification struct {
	UserID string
	Type   string
}

func (n *recordingNotifier) Notify(userID, title, message, notificationType string) {
	n.sent = append(n.sent, sentNotification{UserID: userID, Type: notificationType})
}
