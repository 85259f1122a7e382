// Package extraction pre-fills ticket form fields from an uploaded document
// via a schema-constrained Gemini call.
package extraction

import (
	"context"
	"fmt"
)

// ExtractedTicketData is the structured result of a document extraction.
// Fields the model cannot determine come back as empty strings; passengers
// is always a non-nil slice.
type ExtractedTicketData struct {
	Passengers []string `json:"passengers"`
	Segments   string   `json:"segments"`
	FlightDate string   `json:"flightDate"`
	FlightTime string   `json:"flightTime"`
	PNR        string   `json:"pnr"`
	ETicket    string   `json:"eTicket"`
	IssuedDate string   `json:"issuedDate"`
}

// ExtractionError is the single failure mode of the adapter: transport
// errors and schema violations both surface as this, never as a partially
// populated result. The caller falls back to manual entry; no retries.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("ticket extraction failed: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Service extracts ticket fields from a binary document. Cancellation rides
// the context; the adapter keeps no state between calls.
type Service interface {
	Extract(ctx context.Context, document []byte, mimeType string) (*ExtractedTicketData, error)
}

// DisabledService stands in when no API key is configured. Every call fails
// with an ExtractionError so callers take their manual-entry fallback.
type DisabledService struct{}

func (DisabledService) Extract(ctx context.Context, document []byte, mimeType string) (*ExtractedTicketData, error) {
	return nil, &ExtractionError{Err: fmt.Errorf("extraction service is not configured")}
}
