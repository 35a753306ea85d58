// Package yoco is a client for the Yoco online payments API.
//
// A Client is built once per charge transaction: charge a tokenized card,
// then optionally refund that charge.
//
// Example usage:
//
//	client, err := yoco.NewClient(secretKey, token, 2500)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := client.Charge(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !res.Success {
//	    log.Printf("charge declined: %v", res.Body)
//	}
//
// A Client is not safe for concurrent use.
package yoco

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/wuyiadepoju/yoco-go/internal/app/payment/adapters"
	"github.com/wuyiadepoju/yoco-go/internal/app/payment/contracts"
	"github.com/wuyiadepoju/yoco-go/internal/app/payment/domain"
	"github.com/wuyiadepoju/yoco-go/internal/app/payment/usecases/charge_card"
	"github.com/wuyiadepoju/yoco-go/internal/app/payment/usecases/refund_charge"
)

// ChargeResult is the outcome of Client.Charge.
// Body holds the decoded response whether or not the charge succeeded.
type ChargeResult = domain.ChargeResult

// RefundResult is the outcome of Client.Refund.
type RefundResult = domain.RefundResult

// Body is a decoded JSON response object.
type Body = domain.Body

// Clock supplies the time stamped on successful charges and refunds.
type Clock = domain.Clock

const (
	// DefaultCurrency is used when WithCurrency is not given.
	DefaultCurrency = domain.DefaultCurrency

	// DefaultBaseURL is the API root the client talks to.
	DefaultBaseURL = adapters.DefaultBaseURL
)

var (
	// ErrChargeNotCompleted is returned by Refund when no charge has succeeded.
	ErrChargeNotCompleted = domain.ErrChargeNotCompleted
	// ErrMissingResponseID is returned when a success response has no id.
	ErrMissingResponseID = domain.ErrMissingResponseID

	// ErrMissingSecretKey is returned by NewClient for an empty secret key.
	ErrMissingSecretKey = domain.ErrMissingSecretKey
	// ErrMissingChargeToken is returned by NewClient for an empty charge token.
	ErrMissingChargeToken = domain.ErrMissingChargeToken
	// ErrInvalidAmount is returned by NewClient for a negative amount.
	ErrInvalidAmount = domain.ErrInvalidAmount
	// ErrInvalidCurrency is returned by NewClient for a code that is not three upper-case letters.
	ErrInvalidCurrency = domain.ErrInvalidCurrency
)

type options struct {
	currency   string
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
	registerer prometheus.Registerer
	clock      domain.Clock
}

// Option configures a Client.
type Option func(*options)

// WithCurrency sets the ISO 4217 currency code of the charge.
func WithCurrency(code string) Option {
	return func(o *options) { o.currency = code }
}

// WithBaseURL points the client at another API root, such as a test server.
func WithBaseURL(url string) Option {
	return func(o *options) { o.baseURL = url }
}

// WithHTTPClient sets the HTTP client used for requests. The default has no timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics registers request metrics on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// WithClock replaces the clock used to stamp outcomes.
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

// Client charges one tokenized card and can refund that charge.
type Client struct {
	txn    *domain.Transaction
	charge *charge_card.Interactor
	refund *refund_charge.Interactor
}

// NewClient creates a client for a single charge of amountInCents using chargeToken.
// The currency defaults to ZAR.
func NewClient(secretKey, chargeToken string, amountInCents int64, opts ...Option) (*Client, error) {
	o := options{
		currency: DefaultCurrency,
		baseURL:  DefaultBaseURL,
		logger:   zerolog.Nop(),
		clock:    domain.SystemClock{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	if secretKey == "" {
		return nil, ErrMissingSecretKey
	}

	txn, err := domain.NewTransaction(uuid.New().String(), chargeToken, amountInCents, o.currency)
	if err != nil {
		return nil, err
	}

	var recorder contracts.Recorder = contracts.NopRecorder{}
	if o.registerer != nil {
		r, err := adapters.NewPrometheusRecorder(o.registerer)
		if err != nil {
			return nil, err
		}
		recorder = r
	}

	gateway := adapters.NewYocoGateway(o.httpClient, o.baseURL, secretKey, o.logger, recorder)

	return &Client{
		txn:    txn,
		charge: charge_card.NewInteractor(gateway, o.clock),
		refund: refund_charge.NewInteractor(gateway, o.clock),
	}, nil
}

// Charge sends the charge request. A non-201 response is not an error:
// it comes back with Success false and the response body.
func (c *Client) Charge(ctx context.Context) (*ChargeResult, error) {
	return c.charge.Execute(ctx, c.txn)
}

// Refund refunds the charge made by this client. It returns ErrChargeNotCompleted
// without sending anything if Charge has not succeeded.
func (c *Client) Refund(ctx context.Context) (*RefundResult, error) {
	return c.refund.Execute(ctx, c.txn)
}

// TransactionID is a local reference attached to this client's log lines.
func (c *Client) TransactionID() string { return c.txn.ID() }

// ChargeToken is the card token the client was built with.
func (c *Client) ChargeToken() string { return c.txn.ChargeToken() }

// AmountInCents is the amount charged, in the currency's smallest unit.
func (c *Client) AmountInCents() int64 { return c.txn.AmountInCents() }

// Currency is the ISO 4217 code sent with the charge.
func (c *Client) Currency() string { return c.txn.Currency() }

// ChargeSuccess reports whether a charge has succeeded.
func (c *Client) ChargeSuccess() bool { return c.txn.ChargeSuccess() }

// ChargeID returns the processor's charge id; ok is false until a charge succeeds.
func (c *Client) ChargeID() (id string, ok bool) { return c.txn.ChargeID() }

// ChargedAt is when the charge succeeded, or the zero time.
func (c *Client) ChargedAt() time.Time { return c.txn.ChargedAt() }

// RefundSuccess reports whether a refund of the current charge has succeeded.
func (c *Client) RefundSuccess() bool { return c.txn.RefundSuccess() }

// RefundID returns the processor's refund id; ok is false until a refund succeeds.
func (c *Client) RefundID() (id string, ok bool) { return c.txn.RefundID() }

// RefundedAt is when the refund succeeded, or the zero time.
func (c *Client) RefundedAt() time.Time { return c.txn.RefundedAt() }
