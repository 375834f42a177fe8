package model

import "time"

// Medication is one pharmacy inventory line. A medication is low on stock
// when Quantity <= ReorderLevel.
type Medication struct {
	Base
	Name         string    `db:"name" json:"name"`
	GenericName  string    `db:"generic_name" json:"generic_name"`
	Category     string    `db:"category" json:"category"`
	Manufacturer string    `db:"manufacturer" json:"manufacturer"`
	Dosage       string    `db:"dosage" json:"dosage"`
	UnitPrice    float64   `db:"unit_price" json:"unit_price"`
	Quantity     int       `db:"quantity" json:"quantity"`
	ReorderLevel int       `db:"reorder_level" json:"reorder_level"`
	ExpiryDate   time.Time `db:"expiry_date" json:"expiry_date"`
}

// LowStock reports whether the inventory line needs reordering.
func (m *Medication) LowStock() bool {
	return m.Quantity <= m.ReorderLevel
}

type CreateMedicationRequest struct {
	Name         string    `json:"name" binding:"required"`
	GenericName  string    `json:"generic_name"`
	Category     string    `json:"category" binding:"required"`
	Manufacturer string    `json:"manufacturer"`
	Dosage       string    `json:"dosage" binding:"required"`
	UnitPrice    float64   `json:"unit_price" binding:"required,gt=0"`
	Quantity     int       `json:"quantity" binding:"gte=0"`
	ReorderLevel int       `json:"reorder_level" binding:"gte=0"`
	ExpiryDate   time.Time `json:"expiry_date" binding:"required"`
}

type UpdateMedicationRequest struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	Dosage       *string  `json:"dosage"`
	UnitPrice    *float64 `json:"unit_price" binding:"omitempty,gt=0"`
	ReorderLevel *int     `json:"reorder_level" binding:"omitempty,gte=0"`
}

// AdjustStockRequest changes the on-hand quantity by a signed delta.
type AdjustStockRequest struct {
	Delta  int    `json:"delta" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

type MedicationFilters struct {
	Category   string `form:"category"`
	LowStock   bool   `form:"low_stock"`
	SearchTerm string `form:"search_term"`
}
