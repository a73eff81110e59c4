package repository

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()

	if _, ok := cache.Get(ctx, "missing"); ok {
		t.Fatalf("expected miss for unknown key")
	}
	if err := cache.Set(ctx, "k", "v", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := cache.Get(ctx, "k")
	if !ok || got != "v" {
		t.Errorf("expected v, got %q (hit=%v)", got, ok)
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cache := NewMemoryCache()
	cache.now = func() time.Time { return now }

	_ = cache.Set(ctx, "k", "v", time.Minute)
	if _, ok := cache.Get(ctx, "k"); !ok {
		t.Fatalf("expected hit before expiry")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := cache.Get(ctx, "k"); ok {
		t.Errorf("expected miss after expiry")
	}
	if cache.Len() != 0 {
		t.Errorf("expected expired entry to be evicted, got %d entries", cache.Len())
	}
}

func TestLoanRepositoryMemory_SaveList(t *testing.T) {
	ctx := context.Background()
	repo := NewLoanRepositoryMemory()

	_ = repo.Save(ctx, CalculationRecord{ID: "1", Kind: "payment"})
	_ = repo.Save(ctx, CalculationRecord{ID: "2", Kind: "schedule"})
	_ = repo.Save(ctx, CalculationRecord{ID: "3", Kind: "payment"})

	all, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 records, got %d", len(all))
	}

	payments, _ := repo.List(ctx, "payment")
	if len(payments) != 2 || payments[0].ID != "1" || payments[1].ID != "3" {
		t.Errorf("unexpected payment records: %+v", payments)
	}
}

func TestLoanRepositoryMemory_Limit(t *testing.T) {
	ctx := context.Background()
	repo := NewLoanRepositoryMemory()
	repo.limit = 2

	for i := 1; i <= 3; i++ {
		_ = repo.Save(ctx, CalculationRecord{ID: fmt.Sprint(i)})
	}

	all, _ := repo.List(ctx, "")
	if len(all) != 2 || all[0].ID != "2" {
		t.Errorf("expected oldest record to be dropped, got %+v", all)
	}
}
