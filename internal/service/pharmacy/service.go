package pharmacy

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository"
	"github.com/medicore/hospital-api/pkg/logger"
)

// Alerter receives low-stock events. Implemented by the notification service.
type Alerter interface {
	LowStockAlert(ctx context.Context, medication *model.Medication) error
}

type Service struct {
	repo    repository.MedicationRepository
	alerter Alerter
	log     *logger.Logger
}

func NewService(repo repository.MedicationRepository, alerter Alerter, log *logger.Logger) *Service {
	return &Service{
		repo:    repo,
		alerter: alerter,
		log:     log,
	}
}

func (s *Service) CreateMedication(ctx context.Context, req *model.CreateMedicationRequest) (*model.Medication, error) {
	medication := &model.Medication{
		Name:         req.Name,
		GenericName:  req.GenericName,
		Category:     req.Category,
		Manufacturer: req.Manufacturer,
		Dosage:       req.Dosage,
		UnitPrice:    req.UnitPrice,
		Quantity:     req.Quantity,
		ReorderLevel: req.ReorderLevel,
		ExpiryDate:   req.ExpiryDate,
	}

	if err := s.repo.Create(ctx, medication); err != nil {
		return nil, fmt.Errorf("failed to create medication: %w", err)
	}

	return medication, nil
}

func (s *Service) GetMedication(ctx context.Context, id uuid.UUID) (*model.Medication, error) {
	medication, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get medication: %w", err)
	}
	return medication, nil
}

func (s *Service) UpdateMedication(ctx context.Context, id uuid.UUID, req *model.UpdateMedicationRequest) (*model.Medication, error) {
	medication, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get medication: %w", err)
	}

	if req.Name != nil {
		medication.Name = *req.Name
	}
	if req.Category != nil {
		medication.Category = *req.Category
	}
	if req.Dosage != nil {
		medication.Dosage = *req.Dosage
	}
	if req.UnitPrice != nil {
		medication.UnitPrice = *req.UnitPrice
	}
	if req.ReorderLevel != nil {
		medication.ReorderLevel = *req.ReorderLevel
	}

	if err := s.repo.Update(ctx, medication); err != nil {
		return nil, fmt.Errorf("failed to update medication: %w", err)
	}

	return medication, nil
}

func (s *Service) DeleteMedication(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete medication: %w", err)
	}
	return nil
}

func (s *Service) ListMedications(ctx context.Context, filters *model.MedicationFilters) ([]*model.Medication, error) {
	medications, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}
	return medications, nil
}

// AdjustStock applies a signed delta to the on-hand quantity. Crossing the
// reorder threshold raises a low-stock alert; alert delivery failures are
// logged, never surfaced to the caller.
func (s *Service) AdjustStock(ctx context.Context, id uuid.UUID, req *model.AdjustStockRequest) (*model.Medication, error) {
	medication, err := s.repo.AdjustStock(ctx, id, req.Delta)
	if err != nil {
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}

	if medication.LowStock() && s.alerter != nil {
		if err := s.alerter.LowStockAlert(ctx, medication); err != nil {
			s.log.Error(err, "failed to send low stock alert", "medication", medication.Name)
		}
	}

	return medication, nil
}

// ListLowStock returns every inventory line at or below its reorder level.
func (s *Service) ListLowStock(ctx context.Context) ([]*model.Medication, error) {
	medications, err := s.repo.ListLowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock medications: %w", err)
	}
	return medications, nil
}
