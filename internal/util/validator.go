package util

import (
	"fmt"
	"time"
)

// dateLayouts are the accepted transaction date formats: full ISO timestamps
// from checkouts, bare dates from the finance form.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ValidateAmount checks that a monetary amount is positive and below a sane cap.
func ValidateAmount(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive, got %f", amount)
	}
	if amount >= 10000000 {
		return fmt.Errorf("amount too large, got %f", amount)
	}
	return nil
}

// ValidateDate checks that a date string parses as one of the accepted layouts.
func ValidateDate(dateStr string) error {
	if dateStr == "" {
		return fmt.Errorf("date is empty")
	}
	if _, err := ParseDate(dateStr); err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}
	return nil
}

// ParseDate parses a transaction date string, trying each accepted layout.
func ParseDate(dateStr string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", dateStr)
}

// ValidateCategory checks that a category is set and reasonably short.
func ValidateCategory(category string) error {
	if category == "" {
		return fmt.Errorf("category is empty")
	}
	if len([]rune(category)) > 40 {
		return fmt.Errorf("category too long, max 40 characters")
	}
	return nil
}
