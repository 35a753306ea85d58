package domain

import "errors"

var (
	ErrChargeNotCompleted = errors.New("no successful charge to refund")
	ErrMissingResponseID  = errors.New("response has no id field")
	ErrMissingSecretKey   = errors.New("secret key cannot be empty")
	ErrMissingChargeToken = errors.New("charge token cannot be empty")
	ErrInvalidAmount      = errors.New("amount in cents cannot be negative")
	ErrInvalidCurrency    = errors.New("currency must be a three-letter ISO 4217 code")
)
