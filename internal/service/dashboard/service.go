package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository"
)

type Service struct {
	patients      repository.PatientRepository
	appointments  repository.AppointmentRepository
	medications   repository.MedicationRepository
	labOrders     repository.LabOrderRepository
	notifications repository.NotificationRepository
}

func NewService(
	patients repository.PatientRepository,
	appointments repository.AppointmentRepository,
	medications repository.MedicationRepository,
	labOrders repository.LabOrderRepository,
	notifications repository.NotificationRepository,
) *Service {
	return &Service{
		patients:      patients,
		appointments:  appointments,
		medications:   medications,
		labOrders:     labOrders,
		notifications: notifications,
	}
}

// Summary derives the landing-page aggregate for the given user. Counts are
// computed on demand; nothing is cached.
func (s *Service) Summary(ctx context.Context, userID uuid.UUID, now time.Time) (*model.DashboardSummary, error) {
	summary := &model.DashboardSummary{}

	total, err := s.patients.Count(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to count patients: %w", err)
	}
	summary.TotalPatients = total

	admitted, err := s.patients.Count(ctx, string(model.PatientStatusAdmitted))
	if err != nil {
		return nil, fmt.Errorf("failed to count admitted patients: %w", err)
	}
	summary.AdmittedPatients = admitted

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	today, err := s.appointments.CountBetween(ctx, dayStart, dayStart.Add(24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("failed to count appointments: %w", err)
	}
	summary.AppointmentsToday = today

	lowStock, err := s.medications.ListLowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock medications: %w", err)
	}
	summary.LowStockMedications = len(lowStock)

	ordered, err := s.labOrders.CountByStatus(ctx, model.LabOrderStatusOrdered)
	if err != nil {
		return nil, fmt.Errorf("failed to count lab orders: %w", err)
	}
	inProgress, err := s.labOrders.CountByStatus(ctx, model.LabOrderStatusInProgress)
	if err != nil {
		return nil, fmt.Errorf("failed to count lab orders: %w", err)
	}
	summary.PendingLabOrders = ordered + inProgress

	unread, err := s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	summary.UnreadNotifications = unread

	return summary, nil
}
