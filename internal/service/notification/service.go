package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/medicore/hospital-api/internal/email"
	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository"
	"github.com/medicore/hospital-api/pkg/logger"
)

type Service struct {
	repo     repository.NotificationRepository
	userRepo repository.UserRepository
	emailSvc email.Service
	log      *logger.Logger
}

func NewService(repo repository.NotificationRepository, userRepo repository.UserRepository, emailSvc email.Service, log *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		userRepo: userRepo,
		emailSvc: emailSvc,
		log:      log,
	}
}

func (s *Service) Notify(ctx context.Context, userID uuid.UUID, title, message string, severity model.NotificationSeverity) error {
	notification := &model.Notification{
		UserID:   userID,
		Title:    title,
		Message:  message,
		Severity: severity,
	}
	if err := s.repo.Create(ctx, notification); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID, filters *model.NotificationFilters) ([]*model.Notification, error) {
	notifications, err := s.repo.ListForUser(ctx, userID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (s *Service) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.repo.MarkRead(ctx, id, userID); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

func (s *Service) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.CountUnread(ctx, userID)
}

// LowStockAlert fans a low-stock warning out to every admin and pharmacist,
// with an email for each. Partial delivery is acceptable; failures are
// logged per recipient.
func (s *Service) LowStockAlert(ctx context.Context, medication *model.Medication) error {
	title := "Low stock: " + medication.Name
	message := fmt.Sprintf("%s (%s) is at %d units, reorder level %d",
		medication.Name, medication.Dosage, medication.Quantity, medication.ReorderLevel)

	for _, role := range []model.Role{model.RoleAdmin, model.RolePharmacist} {
		users, err := s.userRepo.List(ctx, &model.UserFilters{Role: role, Status: model.UserStatusActive})
		if err != nil {
			return fmt.Errorf("failed to resolve %s recipients: %w", role, err)
		}

		for _, user := range users {
			if err := s.Notify(ctx, user.ID, title, message, model.NotificationSeverityWarning); err != nil {
				s.log.Error(err, "failed to notify user", "user_id", user.ID.String())
				continue
			}
			if err := s.emailSvc.Send(user.Email, title, message); err != nil {
				s.log.Error(err, "failed to email low stock alert", "email", user.Email)
			}
		}
	}

	return nil
}
