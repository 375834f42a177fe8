package laboratory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository"
	"github.com/medicore/hospital-api/pkg/errors"
)

type Service struct {
	repo repository.LabOrderRepository
}

func NewService(repo repository.LabOrderRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateOrder(ctx context.Context, orderedBy uuid.UUID, req *model.CreateLabOrderRequest) (*model.LabOrder, error) {
	order := &model.LabOrder{
		PatientID:   req.PatientID,
		OrderedByID: orderedBy,
		TestType:    req.TestType,
		Priority:    req.Priority,
		Notes:       req.Notes,
		Status:      model.LabOrderStatusOrdered,
	}
	if order.Priority == "" {
		order.Priority = "routine"
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create lab order: %w", err)
	}

	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, id uuid.UUID) (*model.LabOrder, error) {
	order, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get lab order: %w", err)
	}
	return order, nil
}

// Start moves an ordered test into processing.
func (s *Service) Start(ctx context.Context, id uuid.UUID) (*model.LabOrder, error) {
	order, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get lab order: %w", err)
	}

	if order.Status != model.LabOrderStatusOrdered {
		return nil, errors.Conflict(
			fmt.Sprintf("cannot start lab order in status %s", order.Status), nil)
	}

	order.Status = model.LabOrderStatusInProgress
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update lab order: %w", err)
	}

	return order, nil
}

// RecordResult completes an in-progress order with its result.
func (s *Service) RecordResult(ctx context.Context, id uuid.UUID, req *model.RecordResultRequest) (*model.LabOrder, error) {
	order, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get lab order: %w", err)
	}

	if order.Status != model.LabOrderStatusInProgress {
		return nil, errors.Conflict(
			fmt.Sprintf("cannot record result for lab order in status %s", order.Status), nil)
	}

	now := time.Now()
	order.Status = model.LabOrderStatusCompleted
	order.Result = req.Result
	order.CompletedAt = &now
	if req.Notes != "" {
		order.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update lab order: %w", err)
	}

	return order, nil
}

// CancelOrder cancels an order that has not completed.
func (s *Service) CancelOrder(ctx context.Context, id uuid.UUID) (*model.LabOrder, error) {
	order, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get lab order: %w", err)
	}

	if order.Status == model.LabOrderStatusCompleted || order.Status == model.LabOrderStatusCancelled {
		return nil, errors.Conflict(
			fmt.Sprintf("cannot cancel lab order in status %s", order.Status), nil)
	}

	order.Status = model.LabOrderStatusCancelled
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update lab order: %w", err)
	}

	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, filters *model.LabOrderFilters) ([]*model.LabOrder, error) {
	orders, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list lab orders: %w", err)
	}
	return orders, nil
}

// CountPending returns orders not yet completed or cancelled.
func (s *Service) CountPending(ctx context.Context) (int, error) {
	ordered, err := s.repo.CountByStatus(ctx, model.LabOrderStatusOrdered)
	if err != nil {
		return 0, err
	}
	inProgress, err := s.repo.CountByStatus(ctx, model.LabOrderStatusInProgress)
	if err != nil {
		return 0, err
	}
	return ordered + inProgress, nil
}
