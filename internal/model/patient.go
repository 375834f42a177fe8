package model

import "time"

type PatientStatus string

const (
	PatientStatusAdmitted   PatientStatus = "admitted"
	PatientStatusOutpatient PatientStatus = "outpatient"
	PatientStatusDischarged PatientStatus = "discharged"
)

type Patient struct {
	Base
	FirstName    string     `db:"first_name" json:"first_name"`
	LastName     string     `db:"last_name" json:"last_name"`
	Email        string     `db:"email" json:"email"`
	Phone        string     `db:"phone" json:"phone"`
	DateOfBirth  time.Time  `db:"date_of_birth" json:"date_of_birth"`
	Gender       string     `db:"gender" json:"gender"`
	BloodType    string     `db:"blood_type" json:"blood_type"`
	Address      string     `db:"address" json:"address"`
	Status       string     `db:"status" json:"status"`
	AssignedToID *string    `db:"assigned_to_id" json:"assigned_to_id,omitempty"`
	AdmittedAt   *time.Time `db:"admitted_at" json:"admitted_at,omitempty"`
	Notes        string     `db:"notes" json:"notes,omitempty"`
}

type CreatePatientRequest struct {
	FirstName   string    `json:"first_name" binding:"required"`
	LastName    string    `json:"last_name" binding:"required"`
	Email       string    `json:"email" binding:"omitempty,email"`
	Phone       string    `json:"phone"`
	DateOfBirth time.Time `json:"date_of_birth" binding:"required"`
	Gender      string    `json:"gender" binding:"omitempty,oneof=male female other"`
	BloodType   string    `json:"blood_type"`
	Address     string    `json:"address"`
	Status      string    `json:"status" binding:"omitempty,oneof=admitted outpatient discharged"`
	Notes       string    `json:"notes"`
}

type UpdatePatientRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone"`
	BloodType *string `json:"blood_type"`
	Address   *string `json:"address"`
	Status    *string `json:"status" binding:"omitempty,oneof=admitted outpatient discharged"`
	Notes     *string `json:"notes"`
}

type PatientFilters struct {
	Status     string `form:"status"`
	SearchTerm string `form:"search_term"`
}
