package domain

import (
	"time"
)

// DefaultCurrency is used when no currency is supplied
const DefaultCurrency = "ZAR"

// Transaction is the aggregate for a single charge and its optional refund
type Transaction struct {
	id            string
	chargeToken   string
	amountInCents int64
	currency      string

	chargeSuccess bool
	chargeID      string
	chargedAt     time.Time

	refundSuccess bool
	refundID      string
	refundedAt    time.Time
}

// NewTransaction creates a transaction ready to be charged.
// An empty currency falls back to DefaultCurrency.
func NewTransaction(id, chargeToken string, amountInCents int64, currency string) (*Transaction, error) {
	if chargeToken == "" {
		return nil, ErrMissingChargeToken
	}
	if amountInCents < 0 {
		return nil, ErrInvalidAmount
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	if !isCurrencyCode(currency) {
		return nil, ErrInvalidCurrency
	}

	return &Transaction{
		id:            id,
		chargeToken:   chargeToken,
		amountInCents: amountInCents,
		currency:      currency,
	}, nil
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// RecordCharge applies a charge outcome. Failed charges leave the transaction untouched.
// A new successful charge clears any refund recorded against the previous one.
func (t *Transaction) RecordCharge(result *ChargeResult, clock Clock) {
	if result == nil || !result.Success {
		return
	}
	t.chargeSuccess = true
	t.chargeID = result.ID
	t.chargedAt = clock.Now()

	t.refundSuccess = false
	t.refundID = ""
	t.refundedAt = time.Time{}
}

// RecordRefund applies a refund outcome. Failed refunds leave the transaction untouched.
func (t *Transaction) RecordRefund(result *RefundResult, clock Clock) {
	if result == nil || !result.Success {
		return
	}
	t.refundSuccess = true
	t.refundID = result.ID
	t.refundedAt = clock.Now()
}

// Refundable returns the charge id to refund, or ErrChargeNotCompleted
func (t *Transaction) Refundable() (string, error) {
	if !t.chargeSuccess || t.chargeID == "" {
		return "", ErrChargeNotCompleted
	}
	return t.chargeID, nil
}

func (t *Transaction) ID() string {
	return t.id
}

func (t *Transaction) ChargeToken() string {
	return t.chargeToken
}

func (t *Transaction) AmountInCents() int64 {
	return t.amountInCents
}

func (t *Transaction) Currency() string {
	return t.currency
}

func (t *Transaction) ChargeSuccess() bool {
	return t.chargeSuccess
}

// ChargeID reports the processor's charge id; ok is false until a charge succeeds
func (t *Transaction) ChargeID() (string, bool) {
	return t.chargeID, t.chargeSuccess
}

func (t *Transaction) ChargedAt() time.Time {
	return t.chargedAt
}

func (t *Transaction) RefundSuccess() bool {
	return t.refundSuccess
}

// RefundID reports the processor's refund id; ok is false until a refund succeeds
func (t *Transaction) RefundID() (string, bool) {
	return t.refundID, t.refundSuccess
}

func (t *Transaction) RefundedAt() time.Time {
	return t.refundedAt
}
