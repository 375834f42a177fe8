package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository"
)

type transactionRepository struct {
	BaseRepository
}

func NewTransactionRepository(base BaseRepository) repository.TransactionRepository {
	return &transactionRepository{base}
}

func (r *transactionRepository) Create(ctx context.Context, txn *model.Transaction) error {
	query := `
		INSERT INTO transactions (
			id, type, category, amount, description, patient_id,
			recorded_by, occurred_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	txn.ID = uuid.New()
	txn.CreatedAt = time.Now()
	txn.UpdatedAt = time.Now()

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, query,
			txn.ID,
			txn.Type,
			txn.Category,
			txn.Amount,
			txn.Description,
			txn.PatientID,
			txn.RecordedBy,
			txn.OccurredAt,
			txn.CreatedAt,
			txn.UpdatedAt,
		)
		return err
	})
}

func (r *transactionRepository) Get(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	query := `
		SELECT * FROM transactions
		WHERE id = $1 AND deleted_at IS NULL
	`

	var txn model.Transaction
	if err := r.db.GetContext(ctx, &txn, query, id); err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &txn, nil
}

func (r *transactionRepository) List(ctx context.Context, filters *model.TransactionFilters) ([]*model.Transaction, error) {
	query := `
		SELECT * FROM transactions
		WHERE deleted_at IS NULL
	`
	args := []interface{}{}

	if filters.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", len(args)+1)
		args = append(args, filters.Type)
	}

	if filters.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", len(args)+1)
		args = append(args, filters.Category)
	}

	if !filters.StartDate.IsZero() {
		query += fmt.Sprintf(" AND occurred_at >= $%d", len(args)+1)
		args = append(args, filters.StartDate)
	}

	if !filters.EndDate.IsZero() {
		query += fmt.Sprintf(" AND occurred_at < $%d", len(args)+1)
		args = append(args, filters.EndDate)
	}

	query += " ORDER BY occurred_at DESC"

	var txns []*model.Transaction
	if err := r.db.SelectContext(ctx, &txns, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return txns, nil
}
