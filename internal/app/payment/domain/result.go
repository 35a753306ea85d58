package domain

// Body is a decoded JSON object returned by the payment API
type Body map[string]any

// ChargeResult is the outcome of one charge request.
// Success is true only when the API answered 201 Created.
type ChargeResult struct {
	Success    bool
	ID         string
	StatusCode int
	Body       Body
}

// RefundResult is the outcome of one refund request.
// Success is true only when the API answered 200 OK.
type RefundResult struct {
	Success    bool
	ID         string
	StatusCode int
	Body       Body
}
