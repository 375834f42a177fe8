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

type medicationRepository struct {
	BaseRepository
}

func NewMedicationRepository(base BaseRepository) repository.MedicationRepository {
	return &medicationRepository{base}
}

func (r *medicationRepository) Create(ctx context.Context, medication *model.Medication) error {
	query := `
		INSERT INTO medications (
			id, name, generic_name, category, manufacturer, dosage,
			unit_price, quantity, reorder_level, expiry_date,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	medication.ID = uuid.New()
	medication.CreatedAt = time.Now()
	medication.UpdatedAt = time.Now()

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, query,
			medication.ID,
			medication.Name,
			medication.GenericName,
			medication.Category,
			medication.Manufacturer,
			medication.Dosage,
			medication.UnitPrice,
			medication.Quantity,
			medication.ReorderLevel,
			medication.ExpiryDate,
			medication.CreatedAt,
			medication.UpdatedAt,
		)
		return err
	})
}

func (r *medicationRepository) Get(ctx context.Context, id uuid.UUID) (*model.Medication, error) {
	query := `
		SELECT * FROM medications
		WHERE id = $1 AND deleted_at IS NULL
	`

	var medication model.Medication
	if err := r.db.GetContext(ctx, &medication, query, id); err != nil {
		return nil, fmt.Errorf("failed to get medication: %w", err)
	}

	return &medication, nil
}

func (r *medicationRepository) Update(ctx context.Context, medication *model.Medication) error {
	query := `
		UPDATE medications SET
			name = $1,
			category = $2,
			dosage = $3,
			unit_price = $4,
			reorder_level = $5,
			updated_at = $6
		WHERE id = $7 AND deleted_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query,
		medication.Name,
		medication.Category,
		medication.Dosage,
		medication.UnitPrice,
		medication.ReorderLevel,
		time.Now(),
		medication.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update medication: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("medication not found")
	}

	return nil
}

func (r *medicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE medications
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete medication: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("medication not found")
	}

	return nil
}

func (r *medicationRepository) List(ctx context.Context, filters *model.MedicationFilters) ([]*model.Medication, error) {
	query := `
		SELECT * FROM medications
		WHERE deleted_at IS NULL
	`
	args := []interface{}{}

	if filters.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", len(args)+1)
		args = append(args, filters.Category)
	}

	if filters.LowStock {
		query += " AND quantity <= reorder_level"
	}

	if filters.SearchTerm != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR generic_name ILIKE $%d)",
			len(args)+1, len(args)+1)
		args = append(args, "%"+filters.SearchTerm+"%")
	}

	query += " ORDER BY name ASC"

	var medications []*model.Medication
	if err := r.db.SelectContext(ctx, &medications, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}

	return medications, nil
}

// AdjustStock applies a signed delta inside a transaction and returns the
// updated row. The quantity check guards against concurrent dispensing
// driving stock negative.
func (r *medicationRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*model.Medication, error) {
	var medication model.Medication

	err := r.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			UPDATE medications
			SET quantity = quantity + $1, updated_at = NOW()
			WHERE id = $2 AND deleted_at IS NULL AND quantity + $1 >= 0
			RETURNING *
		`
		if err := tx.GetContext(ctx, &medication, query, delta, id); err != nil {
			return fmt.Errorf("failed to adjust stock: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &medication, nil
}

func (r *medicationRepository) ListLowStock(ctx context.Context) ([]*model.Medication, error) {
	query := `
		SELECT * FROM medications
		WHERE deleted_at IS NULL AND quantity <= reorder_level
		ORDER BY quantity ASC
	`

	var medications []*model.Medication
	if err := r.db.SelectContext(ctx, &medications, query); err != nil {
		return nil, fmt.Errorf("failed to list low stock medications: %w", err)
	}

	return medications, nil
}
