package validation_test

import (
	"testing"
	"time"

	"airtech/shared/validation"
)

func TestIsAlphabetic(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "plain letters",
			input:    "Jakarta",
			expected: true,
		},
		{
			name:     "mixed case",
			input:    "NewYork",
			expected: true,
		},
		{
			name:     "empty string satisfies the pattern",
			input:    "",
			expected: true,
		},
		{
			name:     "digits rejected",
			input:    "Area51",
			expected: false,
		},
		{
			name:     "spaces rejected",
			input:    "New York",
			expected: false,
		},
		{
			name:     "punctuation rejected",
			input:    "St.Louis",
			expected: false,
		},
		{
			name:     "unicode letters rejected",
			input:    "Köln",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := validation.IsAlphabetic(tt.input); result != tt.expected {
				t.Errorf("expected %v for %q, got %v", tt.expected, tt.input, result)
			}
		})
	}
}

func TestIsAlphanumeric(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "letters and digits",
			input:    "GA123",
			expected: true,
		},
		{
			name:     "spaces allowed",
			input:    "GA 123",
			expected: true,
		},
		{
			name:     "empty string satisfies the pattern",
			input:    "",
			expected: true,
		},
		{
			name:     "hyphen rejected",
			input:    "GA-123",
			expected: false,
		},
		{
			name:     "underscore rejected",
			input:    "GA_123",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := validation.IsAlphanumeric(tt.input); result != tt.expected {
				t.Errorf("expected %v for %q, got %v", tt.expected, tt.input, result)
			}
		})
	}
}

func TestIsPastDate(t *testing.T) {
	today := time.Date(2026, 8, 30, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{
			name:     "yesterday is past",
			date:     today.AddDate(0, 0, -1),
			expected: true,
		},
		{
			name:     "today is not past",
			date:     today,
			expected: false,
		},
		{
			name:     "earlier hour today is not past",
			date:     time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
			expected: false,
		},
		{
			name:     "tomorrow is not past",
			date:     today.AddDate(0, 0, 1),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := validation.IsPastDate(tt.date, today); result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestIsArrivalBeforeDeparture(t *testing.T) {
	departure := time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		arrival  time.Time
		expected bool
	}{
		{
			name:     "arrival the day before",
			arrival:  departure.AddDate(0, 0, -1),
			expected: true,
		},
		{
			name:     "same day travel allowed",
			arrival:  departure,
			expected: false,
		},
		{
			name:     "earlier hour on the same day allowed",
			arrival:  time.Date(2026, 9, 10, 1, 0, 0, 0, time.UTC),
			expected: false,
		},
		{
			name:     "arrival the day after",
			arrival:  departure.AddDate(0, 0, 1),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := validation.IsArrivalBeforeDeparture(tt.arrival, departure); result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}
