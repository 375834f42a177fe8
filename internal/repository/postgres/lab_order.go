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

type labOrderRepository struct {
	BaseRepository
}

func NewLabOrderRepository(base BaseRepository) repository.LabOrderRepository {
	return &labOrderRepository{base}
}

func (r *labOrderRepository) Create(ctx context.Context, order *model.LabOrder) error {
	query := `
		INSERT INTO lab_orders (
			id, patient_id, ordered_by_id, test_type, priority,
			status, notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	order.ID = uuid.New()
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, query,
			order.ID,
			order.PatientID,
			order.OrderedByID,
			order.TestType,
			order.Priority,
			order.Status,
			order.Notes,
			order.CreatedAt,
			order.UpdatedAt,
		)
		return err
	})
}

func (r *labOrderRepository) Get(ctx context.Context, id uuid.UUID) (*model.LabOrder, error) {
	query := `
		SELECT * FROM lab_orders
		WHERE id = $1 AND deleted_at IS NULL
	`

	var order model.LabOrder
	if err := r.db.GetContext(ctx, &order, query, id); err != nil {
		return nil, fmt.Errorf("failed to get lab order: %w", err)
	}

	return &order, nil
}

func (r *labOrderRepository) Update(ctx context.Context, order *model.LabOrder) error {
	query := `
		UPDATE lab_orders SET
			status = $1,
			result = $2,
			completed_at = $3,
			notes = $4,
			updated_at = $5
		WHERE id = $6 AND deleted_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query,
		order.Status,
		order.Result,
		order.CompletedAt,
		order.Notes,
		time.Now(),
		order.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update lab order: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("lab order not found")
	}

	return nil
}

func (r *labOrderRepository) List(ctx context.Context, filters *model.LabOrderFilters) ([]*model.LabOrder, error) {
	query := `
		SELECT * FROM lab_orders
		WHERE deleted_at IS NULL
	`
	args := []interface{}{}

	if filters.PatientID != uuid.Nil {
		query += fmt.Sprintf(" AND patient_id = $%d", len(args)+1)
		args = append(args, filters.PatientID)
	}

	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", len(args)+1)
		args = append(args, filters.Status)
	}

	if filters.Priority != "" {
		query += fmt.Sprintf(" AND priority = $%d", len(args)+1)
		args = append(args, filters.Priority)
	}

	query += " ORDER BY created_at DESC"

	var orders []*model.LabOrder
	if err := r.db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list lab orders: %w", err)
	}

	return orders, nil
}

func (r *labOrderRepository) CountByStatus(ctx context.Context, status model.LabOrderStatus) (int, error) {
	query := `SELECT COUNT(*) FROM lab_orders WHERE deleted_at IS NULL AND status = $1`

	var count int
	if err := r.db.GetContext(ctx, &count, query, status); err != nil {
		return 0, fmt.Errorf("failed to count lab orders: %w", err)
	}
	return count, nil
}
