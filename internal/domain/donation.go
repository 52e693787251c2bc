package domain

import "time"

// PaymentMethod is the cosmetic payment selection offered by the donation
// flow. No processor is ever contacted.
type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentBank   PaymentMethod = "bank"
	PaymentMobile PaymentMethod = "mobile"
	PaymentWallet PaymentMethod = "wallet"
)

// Valid reports whether m is one of the offered payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCard, PaymentBank, PaymentMobile, PaymentWallet:
		return true
	}
	return false
}

// DonationIntent is an ephemeral record of a chosen amount and payment
// method during the donation flow. Recording an intent never touches the
// project's raised or supporter counters.
type DonationIntent struct {
	ID        string        `json:"id"`
	ProjectID string        `json:"projectId"`
	Amount    int64         `json:"amount"`
	Method    PaymentMethod `json:"method"`
	CreatedAt time.Time     `json:"createdAt"`
}

// DonationReceipt is the durable-for-the-session result of applying a
// confirmed donation to a project. Receipts are keyed by the caller's
// idempotency key so a double-submitted payment is applied exactly once.
type DonationReceipt struct {
	IdempotencyKey string        `json:"idempotencyKey"`
	ProjectID      string        `json:"projectId"`
	Amount         int64         `json:"amount"`
	Method         PaymentMethod `json:"method"`
	AppliedAt      time.Time     `json:"appliedAt"`
}
