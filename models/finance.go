package models

import (
	"time"
)

// FinanceApplication stores the submitted form as an opaque JSON
// document. The finance form carries dozens of optional fields that
// change independently of the storage schema, so the payload is kept
// schema-free instead of being normalized into columns.
type FinanceApplication struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Data      JSONMap   `json:"data" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FinanceBorrowerInput covers the applicant block of the finance form.
type FinanceBorrowerInput struct {
	FirstName           string   `json:"firstName" binding:"required,min=2,max=50"`
	LastName            string   `json:"lastName" binding:"required,min=2,max=50"`
	Email               string   `json:"email" binding:"required,email"`
	Phone               string   `json:"phone" binding:"required,min=10"`
	Fax                 string   `json:"fax"`
	SSN                 string   `json:"ssn" binding:"required"`
	DateOfBirth         string   `json:"dateOfBirth" binding:"required"`
	Address             string   `json:"address" binding:"required,min=5"`
	City                string   `json:"city" binding:"required,min=2"`
	State               string   `json:"state" binding:"required,min=2"`
	ZipCode             string   `json:"zipCode" binding:"required"`
	DriversLicenseNum   string   `json:"driversLicenseNumber"`
	DriversLicenseState string   `json:"driversLicenseState" binding:"omitempty,len=2"`
	DriversLicenseExp   string   `json:"driversLicenseExpDate"`
	ResidenceType       string   `json:"residenceType" binding:"required,oneof=own rent other"`
	TimeAtResidence     string   `json:"timeAtResidence" binding:"required"`
	MortgageRentPayment string   `json:"mortgageRentPayment" binding:"required"`
	PriorAddress        string   `json:"priorAddress"`
	AccountsInName      []string `json:"accountsInName" binding:"omitempty,dive,oneof=utilities savings checking phone"`
	EmployerName        string   `json:"employerName" binding:"required"`
	EmployerAddress     string   `json:"employerAddress" binding:"required,min=5"`
	EmployerCity        string   `json:"employerCity" binding:"required,min=2"`
	EmployerState       string   `json:"employerState" binding:"required"`
	EmployerZip         string   `json:"employerZip" binding:"required"`
	BusinessPhone       string   `json:"businessPhone" binding:"required"`
	Occupation          string   `json:"occupation"`
	TimeAtEmployer      string   `json:"timeAtEmployer"`
	GrossMonthlyIncome  string   `json:"grossMonthlyIncome"`
	OtherIncome         string   `json:"otherIncome"`
	OtherIncomeSource   string   `json:"otherIncomeSource"`
}

// FinanceApplicationInput is the validation surface for the intake
// endpoint. The full raw payload, not this struct, is what gets
// persisted, so optional fields the form grows later pass straight
// through to the stored document.
type FinanceApplicationInput struct {
	FinanceBorrowerInput
	CoBorrower        *FinanceBorrowerInput `json:"coBorrower" binding:"omitempty"`
	VehicleOfInterest string                `json:"vehicleOfInterest"`
	VehiclePrice      string                `json:"vehiclePrice"`
	DownPayment       string                `json:"downPayment"`
	TradeInVehicle    string                `json:"tradeInVehicle"`
	TradeInValue      string                `json:"tradeInValue"`
	LoanTermMonths    string                `json:"loanTermMonths"`
	Comments          string                `json:"comments"`
}
