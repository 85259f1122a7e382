package extraction

import (
	"encoding/json"
	"fmt"
	"strings"
)

// requiredFields are the keys the response schema constrains the model to
// emit. Required means present, not non-empty.
var requiredFields = []string{"passengers", "segments", "flightDate", "pnr"}

// parseExtractedTicketData validates the model output against the declared
// schema. Any parse failure or missing required key fails the whole
// extraction; a partial object never escapes.
func parseExtractedTicketData(raw string) (*ExtractedTicketData, error) {
	raw = strings.TrimSpace(raw)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, &ExtractionError{Err: fmt.Errorf("response is not a JSON object: %w", err)}
	}

	for _, key := range requiredFields {
		if _, ok := fields[key]; !ok {
			return nil, &ExtractionError{Err: fmt.Errorf("response is missing required field %q", key)}
		}
	}

	var data ExtractedTicketData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, &ExtractionError{Err: fmt.Errorf("response does not match the ticket schema: %w", err)}
	}

	if data.Passengers == nil {
		data.Passengers = []string{}
	}
	return &data, nil
}
