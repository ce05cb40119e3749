package whatsapp

import "fmt"

// DeliveryError represents an error that occurred while sending a
// WhatsApp message.
type DeliveryError struct {
	// Op is the operation that failed (e.g., "send").
	Op string

	// To is the recipient address associated with the operation.
	To string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *DeliveryError) Error() string {
	if e.To != "" {
		return fmt.Sprintf("whatsapp %s (to: %s): %v", e.Op, e.To, e.Err)
	}
	return fmt.Sprintf("whatsapp %s: %v", e.Op, e.Err)
}

// Unwrap implements the errors.Unwrap interface.
func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// messageResponse is the subset of Twilio's message resource this client
// reads back.
type messageResponse struct {
	Sid     string `json:"sid"`
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}
