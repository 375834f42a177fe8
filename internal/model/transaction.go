package model

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

type Transaction struct {
	Base
	Type        TransactionType `db:"type" json:"type"`
	Category    string          `db:"category" json:"category"`
	Amount      float64         `db:"amount" json:"amount"`
	Description string          `db:"description" json:"description"`
	PatientID   *uuid.UUID      `db:"patient_id" json:"patient_id,omitempty"`
	RecordedBy  uuid.UUID       `db:"recorded_by" json:"recorded_by"`
	OccurredAt  time.Time       `db:"occurred_at" json:"occurred_at"`
}

type CreateTransactionRequest struct {
	Type        string     `json:"type" binding:"required,oneof=income expense"`
	Category    string     `json:"category" binding:"required"`
	Amount      float64    `json:"amount" binding:"required,gt=0"`
	Description string     `json:"description"`
	PatientID   *uuid.UUID `json:"patient_id"`
	OccurredAt  time.Time  `json:"occurred_at" binding:"required"`
}

type TransactionFilters struct {
	Type      TransactionType `form:"type"`
	Category  string          `form:"category"`
	StartDate time.Time       `form:"start_date"`
	EndDate   time.Time       `form:"end_date"`
}

// FinancialSummary aggregates the ledger over a period.
type FinancialSummary struct {
	TotalIncome  float64            `json:"total_income"`
	TotalExpense float64            `json:"total_expense"`
	Net          float64            `json:"net"`
	ByCategory   map[string]float64 `json:"by_category"`
	PeriodStart  time.Time          `json:"period_start"`
	PeriodEnd    time.Time          `json:"period_end"`
	Transactions int                `json:"transactions"`
}
