package util

import (
	"strings"
	"testing"
	"time"
)

func TestValidateAmount(t *testing.T) {
	cases := []struct {
		amount float64
		valid  bool
	}{
		{0.01, true},
		{4.5, true},
		{9999999, true},
		{0, false},
		{-10, false},
		{10000000, false},
	}
	for _, tc := range cases {
		err := ValidateAmount(tc.amount)
		if (err == nil) != tc.valid {
			t.Errorf("ValidateAmount(%g) = %v, want valid=%v", tc.amount, err, tc.valid)
		}
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2025-06-15T10:30:00Z", time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)},
		{"2025-06-15T10:30:00", time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)},
		{"2025-06-15", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.in)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tc.in, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"", "15/06/2025", "ontem"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) succeeded, want error", bad)
		}
	}
}

func TestValidateDate(t *testing.T) {
	if err := ValidateDate("2025-06-15"); err != nil {
		t.Errorf("valid date rejected: %v", err)
	}
	if err := ValidateDate(""); err == nil {
		t.Error("empty date accepted")
	}
	if err := ValidateDate("15/06/2025"); err == nil {
		t.Error("dd/mm date accepted")
	}
}

func TestValidateCategory(t *testing.T) {
	if err := ValidateCategory("Venda de Sorvete"); err != nil {
		t.Errorf("valid category rejected: %v", err)
	}
	if err := ValidateCategory(""); err == nil {
		t.Error("empty category accepted")
	}
	if err := ValidateCategory(strings.Repeat("é", 40)); err != nil {
		t.Errorf("40-rune category rejected: %v", err)
	}
	if err := ValidateCategory(strings.Repeat("é", 41)); err == nil {
		t.Error("41-rune category accepted")
	}
}
