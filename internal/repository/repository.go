// Package repository provides the persistence collaborator for stored loan
// records. The calculation engine never depends on it; it stores and
// returns plain domain values.
package repository

import (
	"context"
	"errors"
)

// ErrNotFound indicates no record exists under the given id.
var ErrNotFound = errors.New("repository: loan record not found")

// LoanRecord is the plain persisted form of a loan position.
type LoanRecord struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Amount         float64 `json:"amount"`
	AnnualRate     float64 `json:"annualRate"`
	TermMonths     int     `json:"termMonths"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	BankType       string  `json:"bankType"`
	StartDate      string  `json:"startDate"`
}

// LoanRepository is the persistence boundary contract.
type LoanRepository interface {
	Save(ctx context.Context, record LoanRecord) error
	FindByID(ctx context.Context, id string) (LoanRecord, error)
	FindAll(ctx context.Context) ([]LoanRecord, error)
	Delete(ctx context.Context, id string) error
}

// Cache is a read-through key/value layer in front of a repository.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
