package financial

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicore/hospital-api/internal/model"
)

type fakeTransactionRepo struct {
	txns []*model.Transaction
}

func (r *fakeTransactionRepo) Create(_ context.Context, txn *model.Transaction) error {
	txn.ID = uuid.New()
	r.txns = append(r.txns, txn)
	return nil
}

func (r *fakeTransactionRepo) Get(_ context.Context, id uuid.UUID) (*model.Transaction, error) {
	for _, txn := range r.txns {
		if txn.ID == id {
			return txn, nil
		}
	}
	return nil, assert.AnError
}

func (r *fakeTransactionRepo) List(_ context.Context, filters *model.TransactionFilters) ([]*model.Transaction, error) {
	var out []*model.Transaction
	for _, txn := range r.txns {
		if !filters.StartDate.IsZero() && txn.OccurredAt.Before(filters.StartDate) {
			continue
		}
		if !filters.EndDate.IsZero() && !txn.OccurredAt.Before(filters.EndDate) {
			continue
		}
		out = append(out, txn)
	}
	return out, nil
}

func txn(kind model.TransactionType, category string, amount float64, at time.Time) *model.Transaction {
	return &model.Transaction{
		Type:       kind,
		Category:   category,
		Amount:     amount,
		OccurredAt: at,
	}
}

func TestSummarize(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	inside := start.Add(48 * time.Hour)

	repo := &fakeTransactionRepo{txns: []*model.Transaction{
		txn(model.TransactionTypeIncome, "consultation", 500, inside),
		txn(model.TransactionTypeIncome, "pharmacy", 120, inside),
		txn(model.TransactionTypeExpense, "supplies", 300, inside),
		txn(model.TransactionTypeExpense, "pharmacy", 40, inside),
		// Outside the window; must be ignored.
		txn(model.TransactionTypeIncome, "consultation", 999, end.Add(time.Hour)),
	}}
	svc := NewService(repo)

	summary, err := svc.Summarize(context.Background(), start, end)
	require.NoError(t, err)

	assert.Equal(t, 620.0, summary.TotalIncome)
	assert.Equal(t, 340.0, summary.TotalExpense)
	assert.Equal(t, 280.0, summary.Net)
	assert.Equal(t, 4, summary.Transactions)
	assert.Equal(t, 500.0, summary.ByCategory["consultation"])
	assert.Equal(t, 80.0, summary.ByCategory["pharmacy"])
	assert.Equal(t, -300.0, summary.ByCategory["supplies"])
}

func TestSummarize_EmptyWindow(t *testing.T) {
	svc := NewService(&fakeTransactionRepo{})

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	summary, err := svc.Summarize(context.Background(), start, start.AddDate(0, 1, 0))
	require.NoError(t, err)

	assert.Zero(t, summary.TotalIncome)
	assert.Zero(t, summary.TotalExpense)
	assert.Zero(t, summary.Net)
	assert.Empty(t, summary.ByCategory)
}
