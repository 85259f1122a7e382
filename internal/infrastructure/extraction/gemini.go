package extraction

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	sharedConfig "flyadmin/internal/shared/config"
	"flyadmin/internal/shared/logger"
)

const defaultModel = "gemini-3-flash-preview"

const extractionPrompt = "Analyze this flight ticket PDF and extract the following information into a valid JSON object: " +
	"passengers (array of names), segments (From - To), flightDate (YYYY-MM-DD), flightTime (HH:MM), " +
	"pnr, eTicket, issuedDate (YYYY-MM-DD). If information is missing, use empty strings. Return ONLY the JSON."

// ticketDataSchema constrains the model output. Required keys must be
// emitted (possibly empty); everything else defaults to empty strings.
var ticketDataSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"passengers": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"segments":   {Type: genai.TypeString},
		"flightDate": {Type: genai.TypeString},
		"flightTime": {Type: genai.TypeString},
		"pnr":        {Type: genai.TypeString},
		"eTicket":    {Type: genai.TypeString},
		"issuedDate": {Type: genai.TypeString},
	},
	Required: []string{"passengers", "segments", "flightDate", "pnr"},
}

// GeminiExtractor implements Service over the Gemini API.
type GeminiExtractor struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  logger.Interface
}

func NewGeminiExtractor(ctx context.Context, cfg *sharedConfig.GeminiConfig, log logger.Interface) (*GeminiExtractor, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &GeminiExtractor{
		client:  client,
		model:   model,
		timeout: timeout,
		logger:  log.Named("gemini_extractor"),
	}, nil
}

func (e *GeminiExtractor) Extract(ctx context.Context, document []byte, mimeType string) (*ExtractedTicketData, error) {
	if len(document) == 0 {
		return nil, &ExtractionError{Err: fmt.Errorf("document is empty")}
	}
	if mimeType == "" {
		mimeType = "application/pdf"
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(document, mimeType),
			genai.NewPartFromText(extractionPrompt),
		}, genai.RoleUser),
	}

	resp, err := e.client.Models.GenerateContent(ctx, e.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   ticketDataSchema,
	})
	if err != nil {
		e.logger.Warnw("gemini extraction call failed", "model", e.model, "error", err)
		return nil, &ExtractionError{Err: err}
	}

	data, err := parseExtractedTicketData(resp.Text())
	if err != nil {
		e.logger.Warnw("gemini extraction response rejected", "model", e.model, "error", err)
		return nil, err
	}

	e.logger.Debugw("document extracted", "model", e.model, "passengers", len(data.Passengers))
	return data, nil
}
