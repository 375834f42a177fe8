package pharmacy

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/pkg/logger"
)

type fakeMedicationRepo struct {
	byID map[uuid.UUID]*model.Medication
}

func newFakeMedicationRepo(meds ...*model.Medication) *fakeMedicationRepo {
	repo := &fakeMedicationRepo{byID: make(map[uuid.UUID]*model.Medication)}
	for _, m := range meds {
		repo.byID[m.ID] = m
	}
	return repo
}

func (r *fakeMedicationRepo) Create(_ context.Context, m *model.Medication) error {
	m.ID = uuid.New()
	r.byID[m.ID] = m
	return nil
}

func (r *fakeMedicationRepo) Get(_ context.Context, id uuid.UUID) (*model.Medication, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, assert.AnError
	}
	return m, nil
}

func (r *fakeMedicationRepo) Update(_ context.Context, m *model.Medication) error {
	r.byID[m.ID] = m
	return nil
}

func (r *fakeMedicationRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeMedicationRepo) List(context.Context, *model.MedicationFilters) ([]*model.Medication, error) {
	out := make([]*model.Medication, 0, len(r.byID))
	for _, m := range r.byID {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMedicationRepo) AdjustStock(_ context.Context, id uuid.UUID, delta int) (*model.Medication, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, assert.AnError
	}
	if m.Quantity+delta < 0 {
		return nil, assert.AnError
	}
	m.Quantity += delta
	return m, nil
}

func (r *fakeMedicationRepo) ListLowStock(context.Context) ([]*model.Medication, error) {
	var out []*model.Medication
	for _, m := range r.byID {
		if m.LowStock() {
			out = append(out, m)
		}
	}
	return out, nil
}

type recordingAlerter struct {
	alerts []string
}

func (a *recordingAlerter) LowStockAlert(_ context.Context, m *model.Medication) error {
	a.alerts = append(a.alerts, m.Name)
	return nil
}

func medication(name string, quantity, reorder int) *model.Medication {
	m := &model.Medication{Name: name, Quantity: quantity, ReorderLevel: reorder}
	m.ID = uuid.New()
	return m
}

func newTestService(repo *fakeMedicationRepo, alerter Alerter) *Service {
	return NewService(repo, alerter, logger.NewLogger(&logger.Config{Output: io.Discard}))
}

func TestAdjustStock_RaisesAlertAtReorderLevel(t *testing.T) {
	med := medication("Amoxicillin", 25, 20)
	repo := newFakeMedicationRepo(med)
	alerter := &recordingAlerter{}
	svc := newTestService(repo, alerter)

	updated, err := svc.AdjustStock(context.Background(), med.ID, &model.AdjustStockRequest{Delta: -5})
	require.NoError(t, err)
	assert.Equal(t, 20, updated.Quantity)
	assert.Equal(t, []string{"Amoxicillin"}, alerter.alerts)
}

func TestAdjustStock_NoAlertAboveReorderLevel(t *testing.T) {
	med := medication("Ibuprofen", 100, 20)
	repo := newFakeMedicationRepo(med)
	alerter := &recordingAlerter{}
	svc := newTestService(repo, alerter)

	updated, err := svc.AdjustStock(context.Background(), med.ID, &model.AdjustStockRequest{Delta: -10})
	require.NoError(t, err)
	assert.Equal(t, 90, updated.Quantity)
	assert.Empty(t, alerter.alerts)
}

func TestAdjustStock_RejectsNegativeResult(t *testing.T) {
	med := medication("Insulin", 3, 10)
	repo := newFakeMedicationRepo(med)
	svc := newTestService(repo, &recordingAlerter{})

	_, err := svc.AdjustStock(context.Background(), med.ID, &model.AdjustStockRequest{Delta: -5})
	assert.Error(t, err)
	assert.Equal(t, 3, med.Quantity, "failed adjustment must not change stock")
}

func TestListLowStock(t *testing.T) {
	low := medication("Insulin", 5, 10)
	ok := medication("Ibuprofen", 100, 20)
	svc := newTestService(newFakeMedicationRepo(low, ok), &recordingAlerter{})

	meds, err := svc.ListLowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, meds, 1)
	assert.Equal(t, "Insulin", meds[0].Name)
}
