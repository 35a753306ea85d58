package charge_card

import (
	"context"

	"github.com/wuyiadepoju/yoco-go/internal/app/payment/contracts"
	"github.com/wuyiadepoju/yoco-go/internal/app/payment/domain"
)

// Interactor handles the charge card use case
type Interactor struct {
	gateway contracts.Gateway
	clock   domain.Clock
}

// NewInteractor creates a new charge card interactor
func NewInteractor(gateway contracts.Gateway, clock domain.Clock) *Interactor {
	return &Interactor{
		gateway: gateway,
		clock:   clock,
	}
}

// Execute charges the transaction's card once and records a successful outcome on it.
// A declined charge is returned without error.
func (i *Interactor) Execute(ctx context.Context, txn *domain.Transaction) (*domain.ChargeResult, error) {
	result, err := i.gateway.Charge(ctx, contracts.ChargeRequest{
		TransactionID: txn.ID(),
		Token:         txn.ChargeToken(),
		AmountInCents: txn.AmountInCents(),
		Currency:      txn.Currency(),
	})
	if err != nil {
		return nil, err
	}

	txn.RecordCharge(result, i.clock)

	return result, nil
}
