package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/wuyiadepoju/yoco-go/internal/app/payment/contracts"
	"github.com/wuyiadepoju/yoco-go/internal/app/payment/domain"
)

var _ contracts.Gateway = (*YocoGateway)(nil)

const (
	// DefaultBaseURL is the Yoco online API root
	DefaultBaseURL = "https://online.yoco.com/v1"

	// SecretKeyHeader carries the merchant secret key on every request
	SecretKeyHeader = "X-Auth-Secret-Key"

	operationCharge = "charge"
	operationRefund = "refund"
)

// YocoGateway implements the gateway interface against the Yoco REST API
type YocoGateway struct {
	client    *http.Client
	baseURL   string
	secretKey string
	logger    zerolog.Logger
	recorder  contracts.Recorder
}

// NewYocoGateway creates a new Yoco gateway.
// A nil recorder disables metrics.
func NewYocoGateway(client *http.Client, baseURL, secretKey string, logger zerolog.Logger, recorder contracts.Recorder) *YocoGateway {
	if client == nil {
		client = &http.Client{}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if recorder == nil {
		recorder = contracts.NopRecorder{}
	}
	return &YocoGateway{
		client:    client,
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		logger:    logger,
		recorder:  recorder,
	}
}

// Charge posts a tokenized card charge. 201 Created marks success.
func (g *YocoGateway) Charge(ctx context.Context, req contracts.ChargeRequest) (*domain.ChargeResult, error) {
	payload := struct {
		Token         string `json:"token"`
		AmountInCents int64  `json:"amountInCents"`
		Currency      string `json:"currency"`
	}{
		Token:         req.Token,
		AmountInCents: req.AmountInCents,
		Currency:      req.Currency,
	}

	status, body, elapsed, err := g.post(ctx, operationCharge, req.TransactionID, "/charges/", payload)
	if err != nil {
		return nil, err
	}

	result := &domain.ChargeResult{StatusCode: status, Body: body}
	if status != http.StatusCreated {
		g.recorder.ObserveRequest(operationCharge, contracts.OutcomeDeclined, elapsed)
		return result, nil
	}

	id, err := responseID(body)
	if err != nil {
		g.recorder.ObserveRequest(operationCharge, contracts.OutcomeError, elapsed)
		return nil, fmt.Errorf("failed to read charge id: %w", err)
	}
	result.Success = true
	result.ID = id
	g.recorder.ObserveRequest(operationCharge, contracts.OutcomeSuccess, elapsed)

	return result, nil
}

// Refund posts a refund for a previously created charge. 200 OK marks success.
func (g *YocoGateway) Refund(ctx context.Context, req contracts.RefundRequest) (*domain.RefundResult, error) {
	payload := struct {
		ChargeID string `json:"chargeId"`
	}{
		ChargeID: req.ChargeID,
	}

	status, body, elapsed, err := g.post(ctx, operationRefund, req.TransactionID, "/refunds/", payload)
	if err != nil {
		return nil, err
	}

	result := &domain.RefundResult{StatusCode: status, Body: body}
	if status != http.StatusOK {
		g.recorder.ObserveRequest(operationRefund, contracts.OutcomeDeclined, elapsed)
		return result, nil
	}

	id, err := responseID(body)
	if err != nil {
		g.recorder.ObserveRequest(operationRefund, contracts.OutcomeError, elapsed)
		return nil, fmt.Errorf("failed to read refund id: %w", err)
	}
	result.Success = true
	result.ID = id
	g.recorder.ObserveRequest(operationRefund, contracts.OutcomeSuccess, elapsed)

	return result, nil
}

// post sends one JSON request and decodes the JSON object it gets back.
// Non-2xx statuses are returned to the caller, not turned into errors.
// Failures are recorded here; the caller records the outcome of a decoded response.
func (g *YocoGateway) post(ctx context.Context, operation, txnID, path string, payload any) (int, domain.Body, time.Duration, error) {
	logger := g.logger.With().
		Str("operation", operation).
		Str("txn_id", txnID).
		Str("secret_key", redact(g.secretKey)).
		Logger()

	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, 0, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(SecretKeyHeader, g.secretKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		elapsed := time.Since(start)
		g.recorder.ObserveRequest(operation, contracts.OutcomeError, elapsed)
		logger.Error().Err(err).Dur("duration", elapsed).Msg("request failed")
		return 0, nil, 0, fmt.Errorf("failed to %s: %w", operation, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	if err != nil {
		g.recorder.ObserveRequest(operation, contracts.OutcomeError, elapsed)
		logger.Error().Err(err).Int("status", resp.StatusCode).Msg("reading response failed")
		return 0, nil, 0, fmt.Errorf("failed to read response: %w", err)
	}

	// Only JSON objects are accepted; arrays and scalars count as malformed.
	var decoded domain.Body
	if err := json.Unmarshal(raw, &decoded); err != nil {
		g.recorder.ObserveRequest(operation, contracts.OutcomeError, elapsed)
		logger.Error().Err(err).Int("status", resp.StatusCode).Int("bytes", len(raw)).Msg("decoding response failed")
		return 0, nil, 0, fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}

	logger.Debug().Int("status", resp.StatusCode).Dur("duration", elapsed).Msg("request completed")

	return resp.StatusCode, decoded, elapsed, nil
}

func responseID(body domain.Body) (string, error) {
	v, ok := body["id"]
	if !ok {
		return "", domain.ErrMissingResponseID
	}
	id, ok := v.(string)
	if !ok || id == "" {
		return "", fmt.Errorf("%w: got %T", domain.ErrMissingResponseID, v)
	}
	return id, nil
}

// redact keeps a short preview of a secret for log lines
func redact(s string) string {
	if len(s) <= 8 {
		return "***"
	}
	return s[:4] + "..." + s[len(s)-2:]
}
