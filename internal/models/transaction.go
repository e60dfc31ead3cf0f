package models

// TransactionType marks a cash-flow record as money in or money out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

// Valid reports whether the type is one of the two known values.
func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// PaymentMethod tags an income record with how the customer paid.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "DINHEIRO"
	PaymentPix  PaymentMethod = "PIX"
	PaymentCard PaymentMethod = "CARTÃO"
)

// Valid reports whether the method is one of the three accepted values.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentPix || m == PaymentCard
}

// AllPaymentMethods returns the three methods in display order.
func AllPaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentCash, PaymentPix, PaymentCard}
}

// Transaction is one append-only cash-flow record. Date is an ISO-8601
// string; same-format strings compare lexicographically in date order.
// PaymentMethod is set only on income records, by convention of the callers.
type Transaction struct {
	ID            string          `json:"id"`
	Type          TransactionType `json:"type"`
	Amount        float64         `json:"amount"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Date          string          `json:"date"`
	PaymentMethod PaymentMethod   `json:"paymentMethod,omitempty"`
}
