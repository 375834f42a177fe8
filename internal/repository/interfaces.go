package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/medicore/hospital-api/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filters *model.UserFilters) ([]*model.User, error)
	Count(ctx context.Context) (int, error)
}

type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	Get(ctx context.Context, id uuid.UUID) (*model.Patient, error)
	Update(ctx context.Context, patient *model.Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filters *model.PatientFilters) ([]*model.Patient, error)
	Count(ctx context.Context, status string) (int, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
	Update(ctx context.Context, appointment *model.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error)
	CountBetween(ctx context.Context, start, end time.Time) (int, error)
}

type MedicationRepository interface {
	Create(ctx context.Context, medication *model.Medication) error
	Get(ctx context.Context, id uuid.UUID) (*model.Medication, error)
	Update(ctx context.Context, medication *model.Medication) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filters *model.MedicationFilters) ([]*model.Medication, error)
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*model.Medication, error)
	ListLowStock(ctx context.Context) ([]*model.Medication, error)
}

type LabOrderRepository interface {
	Create(ctx context.Context, order *model.LabOrder) error
	Get(ctx context.Context, id uuid.UUID) (*model.LabOrder, error)
	Update(ctx context.Context, order *model.LabOrder) error
	List(ctx context.Context, filters *model.LabOrderFilters) ([]*model.LabOrder, error)
	CountByStatus(ctx context.Context, status model.LabOrderStatus) (int, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, txn *model.Transaction) error
	Get(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	List(ctx context.Context, filters *model.TransactionFilters) ([]*model.Transaction, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	ListForUser(ctx context.Context, userID uuid.UUID, filters *model.NotificationFilters) ([]*model.Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
}
