package repository

import (
	"context"
	"sync"
)

// MemoryLoanRepository is an in-memory implementation of LoanRepository.
type MemoryLoanRepository struct {
	mu      sync.RWMutex
	records map[string]LoanRecord
}

// NewMemoryLoanRepository creates a new in-memory loan repository.
func NewMemoryLoanRepository() *MemoryLoanRepository {
	return &MemoryLoanRepository{
		records: make(map[string]LoanRecord),
	}
}

// Save stores the loan record in memory, replacing any record with the
// same id.
func (r *MemoryLoanRepository) Save(_ context.Context, record LoanRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.ID] = record
	return nil
}

// FindByID returns the record stored under the given id.
func (r *MemoryLoanRepository) FindByID(_ context.Context, id string) (LoanRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[id]
	if !ok {
		return LoanRecord{}, ErrNotFound
	}
	return record, nil
}

// FindAll returns all stored records.
func (r *MemoryLoanRepository) FindAll(_ context.Context) ([]LoanRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	records := make([]LoanRecord, 0, len(r.records))
	for _, record := range r.records {
		records = append(records, record)
	}
	return records, nil
}

// Delete removes the record stored under the given id.
func (r *MemoryLoanRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return ErrNotFound
	}
	delete(r.records, id)
	return nil
}
