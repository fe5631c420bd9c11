package admission_test

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Hospitalario-api/internal/application/admission"
	"github.com/jhoicas/Hospitalario-api/internal/domain"
	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
	"github.com/jhoicas/Hospitalario-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Replican la semántica de los
// updates condicionales (cero filas afectadas -> error de regla de negocio) y
// el TxRunner hace snapshot/restore para simular el rollback.
// ──────────────────────────────────────────────────────────────────────────────

type memAdmissions struct {
	items map[string]*entity.Admission
}

func newMemAdmissions() *memAdmissions {
	return &memAdmissions{items: map[string]*entity.Admission{}}
}

func (m *memAdmissions) Create(a *entity.Admission) error {
	cp := *a
	m.items[a.ID] = &cp
	return nil
}

func (m *memAdmissions) GetByID(id string) (*entity.Admission, error) {
	a, found := m.items[id]
	if !found {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (m *memAdmissions) List(status string, limit, offset int) ([]*entity.Admission, error) {
	var list []*entity.Admission
	for _, a := range m.items {
		if status == "" || a.Status == status {
			cp := *a
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (m *memAdmissions) MarkApproved(id, bedID, approvedBy string, assignedDoctorID *string) error {
	a, found := m.items[id]
	if !found || a.Status != entity.AdmissionStatusActive {
		return domain.ErrAlreadyProcessed
	}
	a.Status = entity.AdmissionStatusApproved
	a.BedID = &bedID
	a.ApprovedBy = &approvedBy
	if assignedDoctorID != nil {
		a.AssignedDoctorID = assignedDoctorID
	}
	return nil
}

func (m *memAdmissions) MarkDischarged(id string, at time.Time) error {
	a, found := m.items[id]
	if !found || a.Status != entity.AdmissionStatusApproved {
		return domain.ErrAlreadyProcessed
	}
	a.Status = entity.AdmissionStatusDischarged
	a.DischargedAt = &at
	return nil
}

func (m *memAdmissions) snapshot() map[string]entity.Admission {
	s := make(map[string]entity.Admission, len(m.items))
	for k, v := range m.items {
		s[k] = *v
	}
	return s
}

func (m *memAdmissions) restore(s map[string]entity.Admission) {
	m.items = make(map[string]*entity.Admission, len(s))
	for k, v := range s {
		cp := v
		m.items[k] = &cp
	}
}

type memBeds struct {
	items map[string]*entity.Bed
}

func newMemBeds() *memBeds { return &memBeds{items: map[string]*entity.Bed{}} }

func (m *memBeds) CreateBatch(beds []*entity.Bed) error {
	for _, b := range beds {
		cp := *b
		m.items[b.ID] = &cp
	}
	return nil
}

func (m *memBeds) GetByID(id string) (*entity.Bed, error) {
	b, found := m.items[id]
	if !found {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (m *memBeds) GetInWard(bedID, wardID string) (*entity.Bed, error) {
	b, found := m.items[bedID]
	if !found || b.WardID != wardID {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (m *memBeds) FirstAvailable(wardID string) (*entity.Bed, error) {
	var candidates []*entity.Bed
	for _, b := range m.items {
		if b.WardID == wardID && b.Status == entity.BedStatusAvailable {
			candidates = append(candidates, b)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].BedNumber < candidates[j].BedNumber
	})
	cp := *candidates[0]
	return &cp, nil
}

func (m *memBeds) ListByWard(wardID string) ([]*entity.Bed, error) {
	var list []*entity.Bed
	for _, b := range m.items {
		if b.WardID == wardID {
			cp := *b
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (m *memBeds) Occupy(bedID, patientID string) error {
	b, found := m.items[bedID]
	if !found || b.Status != entity.BedStatusAvailable {
		return domain.ErrBedUnavailable
	}
	b.Status = entity.BedStatusOccupied
	b.CurrentPatientID = &patientID
	return nil
}

func (m *memBeds) Release(bedID string) error {
	b, found := m.items[bedID]
	if found && b.Status == entity.BedStatusOccupied {
		b.Status = entity.BedStatusAvailable
		b.CurrentPatientID = nil
	}
	return nil
}

func (m *memBeds) snapshot() map[string]entity.Bed {
	s := make(map[string]entity.Bed, len(m.items))
	for k, v := range m.items {
		s[k] = *v
	}
	return s
}

func (m *memBeds) restore(s map[string]entity.Bed) {
	m.items = make(map[string]*entity.Bed, len(s))
	for k, v := range s {
		cp := v
		m.items[k] = &cp
	}
}

type memWards struct {
	items map[string]*entity.Ward
}

func newMemWards() *memWards { return &memWards{items: map[string]*entity.Ward{}} }

func (m *memWards) Create(w *entity.Ward) error {
	cp := *w
	m.items[w.ID] = &cp
	return nil
}

func (m *memWards) GetByID(id string) (*entity.Ward, error) {
	w, found := m.items[id]
	if !found {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (m *memWards) List(limit, offset int) ([]*entity.Ward, error) {
	var list []*entity.Ward
	for _, w := range m.items {
		cp := *w
		list = append(list, &cp)
	}
	return list, nil
}

func (m *memWards) FindAvailableByType(wardType string) (*entity.Ward, error) {
	var best *entity.Ward
	for _, w := range m.items {
		if w.WardType != wardType || !w.IsActive || w.AvailableBeds <= 0 {
			continue
		}
		if best == nil || w.AvailableBeds > best.AvailableBeds {
			best = w
		}
	}
	if best == nil {
		return nil, nil
	}
	cp := *best
	return &cp, nil
}

func (m *memWards) DecrementAvailableBeds(id string) error {
	w, found := m.items[id]
	if !found || w.AvailableBeds <= 0 {
		return domain.ErrNoCapacity
	}
	w.AvailableBeds--
	return nil
}

func (m *memWards) IncrementAvailableBeds(id string) error {
	w, found := m.items[id]
	if found && w.AvailableBeds < w.TotalBeds {
		w.AvailableBeds++
	}
	return nil
}

func (m *memWards) snapshot() map[string]entity.Ward {
	s := make(map[string]entity.Ward, len(m.items))
	for k, v := range m.items {
		s[k] = *v
	}
	return s
}

func (m *memWards) restore(s map[string]entity.Ward) {
	m.items = make(map[string]*entity.Ward, len(s))
	for k, v := range s {
		cp := v
		m.items[k] = &cp
	}
}

type memPatients struct {
	items map[string]*entity.Patient
}

func newMemPatients() *memPatients { return &memPatients{items: map[string]*entity.Patient{}} }

func (m *memPatients) Create(p *entity.Patient) error {
	cp := *p
	m.items[p.ID] = &cp
	return nil
}

func (m *memPatients) GetByID(id string) (*entity.Patient, error) {
	p, found := m.items[id]
	if !found {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memPatients) List(limit, offset int) ([]*entity.Patient, error) { return nil, nil }

type memUsers struct {
	items map[string]*entity.User
}

func newMemUsers() *memUsers { return &memUsers{items: map[string]*entity.User{}} }

func (m *memUsers) Create(u *entity.User) error {
	cp := *u
	m.items[u.ID] = &cp
	return nil
}

func (m *memUsers) GetByID(id string) (*entity.User, error) {
	u, found := m.items[id]
	if !found {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) FindByEmail(email string) (*entity.User, error) { return nil, nil }
func (m *memUsers) List(limit, offset int) ([]*entity.User, error) { return nil, nil }

type memVisits struct {
	statuses  map[string]string
	updateErr error
}

func newMemVisits() *memVisits { return &memVisits{statuses: map[string]string{}} }

func (m *memVisits) Create(v *entity.Visit) error { return nil }

func (m *memVisits) GetByID(id string) (*entity.Visit, error) { return nil, nil }

func (m *memVisits) UpdateStatus(id, status string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.statuses[id] = status
	return nil
}

func (m *memVisits) ListByPatient(patientID string, limit, offset int) ([]*entity.Visit, error) {
	return nil, nil
}

// memTxRunner ejecuta el callback sobre los mismos fakes y restaura el estado
// previo si el callback falla, igual que un rollback real.
type memTxRunner struct {
	adm   *memAdmissions
	beds  *memBeds
	wards *memWards

	// before corre al entrar a la transacción, antes del snapshot. Sirve para
	// simular a otro proceso ganando la carrera entre la lectura y la tx.
	before func()
}

var _ admission.TxRunner = (*memTxRunner)(nil)

func (t *memTxRunner) RunAdmission(ctx context.Context, fn func(
	admissionRepo repository.AdmissionRepository,
	bedRepo repository.BedRepository,
	wardRepo repository.WardRepository,
) error) error {
	if t.before != nil {
		t.before()
		t.before = nil
	}
	admSnap := t.adm.snapshot()
	bedSnap := t.beds.snapshot()
	wardSnap := t.wards.snapshot()
	if err := fn(t.adm, t.beds, t.wards); err != nil {
		t.adm.restore(admSnap)
		t.beds.restore(bedSnap)
		t.wards.restore(wardSnap)
		return err
	}
	return nil
}

// recordingNotifier acumula las notificaciones emitidas.
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
