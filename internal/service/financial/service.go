package financial

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository"
)

type Service struct {
	repo repository.TransactionRepository
}

func NewService(repo repository.TransactionRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateTransaction(ctx context.Context, recordedBy uuid.UUID, req *model.CreateTransactionRequest) (*model.Transaction, error) {
	txn := &model.Transaction{
		Type:        model.TransactionType(req.Type),
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		PatientID:   req.PatientID,
		RecordedBy:  recordedBy,
		OccurredAt:  req.OccurredAt,
	}

	if err := s.repo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return txn, nil
}

func (s *Service) GetTransaction(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	txn, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

func (s *Service) ListTransactions(ctx context.Context, filters *model.TransactionFilters) ([]*model.Transaction, error) {
	txns, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// Summarize aggregates the ledger over [start, end). Income minus expense,
// with per-category signed totals.
func (s *Service) Summarize(ctx context.Context, start, end time.Time) (*model.FinancialSummary, error) {
	txns, err := s.repo.List(ctx, &model.TransactionFilters{
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	summary := &model.FinancialSummary{
		ByCategory:   make(map[string]float64),
		PeriodStart:  start,
		PeriodEnd:    end,
		Transactions: len(txns),
	}

	for _, txn := range txns {
		switch txn.Type {
		case model.TransactionTypeIncome:
			summary.TotalIncome += txn.Amount
			summary.ByCategory[txn.Category] += txn.Amount
		case model.TransactionTypeExpense:
			summary.TotalExpense += txn.Amount
			summary.ByCategory[txn.Category] -= txn.Amount
		}
	}
	summary.Net = summary.TotalIncome - summary.TotalExpense

	return summary, nil
}
