package datetime

import (
	"testing"
	"time"
)

func TestMustParseTimePanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected MustParseTime to panic with invalid date")
		}
	}()

	MustParseTime(DateTimeLayout, "invalid-date")
}

func TestOffsetDate(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		months   int
		expected string
		wantErr  bool
	}{
		{
			name:     "Add one month",
			date:     "2025-01",
			months:   1,
			expected: "2025-02",
		},
		{
			name:     "Add a year",
			date:     "2025-01",
			months:   12,
			expected: "2026-01",
		},
		{
			name:     "Subtract across year boundary",
			date:     "2025-01",
			months:   -1,
			expected: "2024-12",
		},
		{
			name:    "Invalid date",
			date:    "not-a-date",
			months:  1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := OffsetDate(tt.date, DateTimeLayout, tt.months)
			if (err != nil) != tt.wantErr {
				t.Errorf("OffsetDate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && result != tt.expected {
				t.Errorf("OffsetDate() = %s, expected %s", result, tt.expected)
			}
		})
	}
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		second   string
		expected int
	}{
		{"Same month", "2025-01", "2025-01", 0},
		{"One month apart", "2025-01", "2025-02", 1},
		{"One year apart", "2025-01", "2026-01", 12},
		{"Across several years", "2024-01", "2026-08", 31},
		{"Second before first", "2025-06", "2025-01", -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := MustParseTime(DateTimeLayout, tt.first)
			second := MustParseTime(DateTimeLayout, tt.second)
			result := MonthsBetween(first, second)
			if result != tt.expected {
				t.Errorf("MonthsBetween(%s, %s) = %d, expected %d", tt.first, tt.second, result, tt.expected)
			}
		})
	}
}

func TestMonthsBetweenPartialMonth(t *testing.T) {
	first := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	second := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	// 2025-01-20 to 2025-03-05 is one whole month plus a partial one.
	if got := MonthsBetween(first, second); got != 1 {
		t.Errorf("MonthsBetween() = %d, expected 1", got)
	}
}

func TestAddMonths(t *testing.T) {
	start := MustParseTime(DateTimeLayout, "2024-01")
	result := AddMonths(start, 300)
	if result.Format(DateTimeLayout) != "2049-01" {
		t.Errorf("AddMonths() = %s, expected 2049-01", result.Format(DateTimeLayout))
	}
}

func TestDateBeforeDate(t *testing.T) {
	before, err := DateBeforeDate("2025-01", "2025-02")
	if err != nil {
		t.Fatalf("DateBeforeDate() error = %v", err)
	}
	if !before {
		t.Errorf("DateBeforeDate() = false, expected true")
	}

	before, err = DateBeforeDate("2025-02", "2025-02")
	if err != nil {
		t.Fatalf("DateBeforeDate() error = %v", err)
	}
	if before {
		t.Errorf("DateBeforeDate() = true, expected false for equal dates")
	}
}
