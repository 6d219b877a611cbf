package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedRepositorySavePopulatesCache(t *testing.T) {
	inner := NewMemoryLoanRepository()
	cache := NewMockCache()
	repo := NewCachedLoanRepository(inner, cache)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleRecord("loan-1")))

	_, ok := cache.Data["loan:loan-1"]
	assert.True(t, ok, "save should write through to the cache")
}

func TestCachedRepositoryServesFromCache(t *testing.T) {
	inner := NewMemoryLoanRepository()
	cache := NewMockCache()
	repo := NewCachedLoanRepository(inner, cache)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleRecord("loan-1")))

	// Drop the record from the inner store; the cache still answers.
	require.NoError(t, inner.Delete(ctx, "loan-1"))

	found, err := repo.FindByID(ctx, "loan-1")
	require.NoError(t, err)
	assert.Equal(t, "loan-1", found.ID)
	assert.Equal(t, 300000.0, found.Amount)
}

func TestCachedRepositoryRepopulatesOnMiss(t *testing.T) {
	inner := NewMemoryLoanRepository()
	cache := NewMockCache()
	repo := NewCachedLoanRepository(inner, cache)
	ctx := context.Background()

	// Seed the inner store directly so the cache starts cold.
	require.NoError(t, inner.Save(ctx, sampleRecord("loan-1")))

	found, err := repo.FindByID(ctx, "loan-1")
	require.NoError(t, err)
	assert.Equal(t, "loan-1", found.ID)

	_, ok := cache.Data["loan:loan-1"]
	assert.True(t, ok, "a cache miss should repopulate the cache")
}

func TestCachedRepositoryMissEverywhere(t *testing.T) {
	repo := NewCachedLoanRepository(NewMemoryLoanRepository(), NewMockCache())

	_, err := repo.FindByID(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound), "error = %v", err)
}

func TestCachedRepositoryIgnoresCorruptCacheEntry(t *testing.T) {
	inner := NewMemoryLoanRepository()
	cache := NewMockCache()
	repo := NewCachedLoanRepository(inner, cache)
	ctx := context.Background()

	require.NoError(t, inner.Save(ctx, sampleRecord("loan-1")))
	cache.Data["loan:loan-1"] = "{not json"

	found, err := repo.FindByID(ctx, "loan-1")
	require.NoError(t, err)
	assert.Equal(t, "loan-1", found.ID, "a corrupt cache entry falls back to the repository")
}

func TestCachedRepositoryDeleteInvalidatesCache(t *testing.T) {
	inner := NewMemoryLoanRepository()
	cache := NewMockCache()
	repo := NewCachedLoanRepository(inner, cache)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleRecord("loan-1")))
	require.NoError(t, repo.Delete(ctx, "loan-1"))

	_, ok := cache.Data["loan:loan-1"]
	assert.False(t, ok, "delete should remove the cache entry")

	_, err := repo.FindByID(ctx, "loan-1")
	assert.True(t, errors.Is(err, ErrNotFound), "a deleted record must not be served from the cache: error = %v", err)
}

func TestCachedRepositoryFindAllBypassesCache(t *testing.T) {
	inner := NewMemoryLoanRepository()
	repo := NewCachedLoanRepository(inner, NewMockCache())
	ctx := context.Background()

	require.NoError(t, inner.Save(ctx, sampleRecord("loan-1")))
	require.NoError(t, inner.Save(ctx, sampleRecord("loan-2")))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
