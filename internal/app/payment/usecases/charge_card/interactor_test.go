package charge_card

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wuyiadepoju/yoco-go/internal/app/payment/contracts"
	"github.com/wuyiadepoju/yoco-go/internal/app/payment/domain"
)

// MockGateway is a mock implementation of Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Charge(ctx context.Context, req contracts.ChargeRequest) (*domain.ChargeResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChargeResult), args.Error(1)
}

func (m *MockGateway) Refund(ctx context.Context, req contracts.RefundRequest) (*domain.RefundResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RefundResult), args.Error(1)
}

func newTransaction(t *testing.T) *domain.Transaction {
	t.Helper()
	txn, err := domain.NewTransaction("txn-1", "tok_abc", 2500, "ZAR")
	require.NoError(t, err)
	return txn
}

func TestChargeCard_Success(t *testing.T) {
	ctx := context.Background()
	chargedAt := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	clock := domain.StoppedClock{At: chargedAt}
	txn := newTransaction(t)

	mockGateway := new(MockGateway)
	interactor := NewInteractor(mockGateway, clock)

	expected := contracts.ChargeRequest{
		TransactionID: "txn-1",
		Token:         "tok_abc",
		AmountInCents: 2500,
		Currency:      "ZAR",
	}
	mockGateway.On("Charge", ctx, expected).Return(&domain.ChargeResult{
		Success:    true,
		ID:         "ch_123",
		StatusCode: 201,
		Body:       domain.Body{"id": "ch_123"},
	}, nil)

	result, err := interactor.Execute(ctx, txn)

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, txn.ChargeSuccess())
	chargeID, ok := txn.ChargeID()
	assert.True(t, ok)
	assert.Equal(t, "ch_123", chargeID)
	assert.Equal(t, chargedAt, txn.ChargedAt())
	mockGateway.AssertExpectations(t)
}

func TestChargeCard_Declined(t *testing.T) {
	ctx := context.Background()
	txn := newTransaction(t)

	mockGateway := new(MockGateway)
	interactor := NewInteractor(mockGateway, domain.SystemClock{})

	mockGateway.On("Charge", ctx, mock.Anything).Return(&domain.ChargeResult{
		StatusCode: 400,
		Body:       domain.Body{"error": "invalid_token"},
	}, nil)

	result, err := interactor.Execute(ctx, txn)

	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, domain.Body{"error": "invalid_token"}, result.Body)
	assert.False(t, txn.ChargeSuccess())
	_, ok := txn.ChargeID()
	assert.False(t, ok)
}

func TestChargeCard_GatewayError(t *testing.T) {
	ctx := context.Background()
	txn := newTransaction(t)
	gatewayErr := errors.New("connection refused")

	mockGateway := new(MockGateway)
	interactor := NewInteractor(mockGateway, domain.SystemClock{})

	mockGateway.On("Charge", ctx, mock.Anything).Return(nil, gatewayErr)

	result, err := interactor.Execute(ctx, txn)

	assert.ErrorIs(t, err, gatewayErr)
	assert.Nil(t, result)
	assert.False(t, txn.ChargeSuccess())
}
