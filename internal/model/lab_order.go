package model

import (
	"time"

	"github.com/google/uuid"
)

type LabOrderStatus string

const (
	LabOrderStatusOrdered    LabOrderStatus = "ordered"
	LabOrderStatusInProgress LabOrderStatus = "in_progress"
	LabOrderStatusCompleted  LabOrderStatus = "completed"
	LabOrderStatusCancelled  LabOrderStatus = "cancelled"
)

type LabOrder struct {
	Base
	PatientID   uuid.UUID      `db:"patient_id" json:"patient_id"`
	OrderedByID uuid.UUID      `db:"ordered_by_id" json:"ordered_by_id"`
	TestType    string         `db:"test_type" json:"test_type"`
	Priority    string         `db:"priority" json:"priority"`
	Status      LabOrderStatus `db:"status" json:"status"`
	Result      string         `db:"result" json:"result,omitempty"`
	CompletedAt *time.Time     `db:"completed_at" json:"completed_at,omitempty"`
	Notes       string         `db:"notes" json:"notes,omitempty"`
}

type CreateLabOrderRequest struct {
	PatientID uuid.UUID `json:"patient_id" binding:"required"`
	TestType  string    `json:"test_type" binding:"required"`
	Priority  string    `json:"priority" binding:"omitempty,oneof=routine urgent stat"`
	Notes     string    `json:"notes"`
}

// RecordResultRequest completes a lab order with its result.
type RecordResultRequest struct {
	Result string `json:"result" binding:"required"`
	Notes  string `json:"notes"`
}

type LabOrderFilters struct {
	PatientID uuid.UUID      `form:"patient_id"`
	Status    LabOrderStatus `form:"status"`
	Priority  string         `form:"priority"`
}
