package handler

import (
	"testing"

	"gelato-pos/internal/models"
)

func TestExportRows(t *testing.T) {
	list := []models.Transaction{
		{
			Type:        models.TransactionExpense,
			Description: "Compra de leite; urgente",
			Category:    "Insumos",
			Amount:      120,
			Date:        "2025-06-10T09:00:00Z",
		},
		{
			Type:          models.TransactionIncome,
			Description:   "Consumo Mesa 3",
			Category:      "Venda de Sorvete",
			PaymentMethod: models.PaymentPix,
			Amount:        13.5,
			Date:          "2025-06-15T18:30:00Z",
		},
	}

	rows := exportRows(list)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	// newest first
	if rows[0][0] != "15/06/2025" || rows[1][0] != "10/06/2025" {
		t.Errorf("row order = %q, %q", rows[0][0], rows[1][0])
	}

	income := rows[0]
	if income[1] != "Entrada" {
		t.Errorf("tipo = %q, want Entrada", income[1])
	}
	if income[4] != string(models.PaymentPix) {
		t.Errorf("método = %q, want PIX", income[4])
	}
	if income[5] != "13,50" {
		t.Errorf("valor = %q, want 13,50", income[5])
	}

	expense := rows[1]
	if expense[1] != "Saída" {
		t.Errorf("tipo = %q, want Saída", expense[1])
	}
	if expense[2] != "Compra de leite  urgente" {
		t.Errorf("separator not stripped: %q", expense[2])
	}
	if expense[4] != "N/A" {
		t.Errorf("método = %q, want N/A placeholder", expense[4])
	}
}

func TestExportRows_Empty(t *testing.T) {
	if rows := exportRows(nil); len(rows) != 0 {
		t.Errorf("got %d rows from empty ledger", len(rows))
	}
}

func TestFormatDateBR(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"2025-06-15T18:30:00Z", "15/06/2025"},
		{"2025-12-01", "01/12/2025"},
		{"sem data", "sem data"},
	}
	for _, tc := range cases {
		if got := formatDateBR(tc.in); got != tc.want {
			t.Errorf("formatDateBR(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDecimalComma(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{4.5, "4,50"},
		{0, "0,00"},
		{1234.567, "1234,57"},
	}
	for _, tc := range cases {
		if got := formatDecimalComma(tc.in); got != tc.want {
			t.Errorf("formatDecimalComma(%g) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
