package contracts

import (
	"context"

	"github.com/wuyiadepoju/yoco-go/internal/app/payment/domain"
)

// ChargeRequest carries the fields sent to the charges endpoint
type ChargeRequest struct {
	TransactionID string
	Token         string
	AmountInCents int64
	Currency      string
}

// RefundRequest carries the fields sent to the refunds endpoint
type RefundRequest struct {
	TransactionID string
	ChargeID      string
}

// Gateway defines the interface for the payment processor
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*domain.ChargeResult, error)
	Refund(ctx context.Context, req RefundRequest) (*domain.RefundResult, error)
}
