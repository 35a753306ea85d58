package refund_charge

import (
	"context"

	"github.com/wuyiadepoju/yoco-go/internal/app/payment/contracts"
	"github.com/wuyiadepoju/yoco-go/internal/app/payment/domain"
)

// Interactor handles the refund charge use case
type Interactor struct {
	gateway contracts.Gateway
	clock   domain.Clock
}

// NewInteractor creates a new refund charge interactor
func NewInteractor(gateway contracts.Gateway, clock domain.Clock) *Interactor {
	return &Interactor{
		gateway: gateway,
		clock:   clock,
	}
}

// Execute refunds the transaction's charge.
// Nothing is sent unless a charge has succeeded on the same transaction.
func (i *Interactor) Execute(ctx context.Context, txn *domain.Transaction) (*domain.RefundResult, error) {
	chargeID, err := txn.Refundable()
	if err != nil {
		return nil, err
	}

	result, err := i.gateway.Refund(ctx, contracts.RefundRequest{
		TransactionID: txn.ID(),
		ChargeID:      chargeID,
	})
	if err != nil {
		return nil, err
	}

	txn.RecordRefund(result, i.clock)

	return result, nil
}
