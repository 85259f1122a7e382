package usecases

import (
	"context"
	goerrors "errors"

	"flyadmin/internal/infrastructure/extraction"
	"flyadmin/internal/shared/errors"
	"flyadmin/internal/shared/logger"
)

type ExtractTicketDataCommand struct {
	Document []byte
	MimeType string
}

type ExtractTicketDataResult struct {
	Data *extraction.ExtractedTicketData
}

// ExtractTicketDataUseCase runs the one-shot document extraction used to
// pre-fill the ticket form. Failures surface as a single extraction error;
// the caller falls back to manual entry.
type ExtractTicketDataUseCase struct {
	extractor extraction.Service
	logger    logger.Interface
}

func NewExtractTicketDataUseCase(extractor extraction.Service, log logger.Interface) *ExtractTicketDataUseCase {
	return &ExtractTicketDataUseCase{
		extractor: extractor,
		logger:    log,
	}
}

func (uc *ExtractTicketDataUseCase) Execute(ctx context.Context, cmd ExtractTicketDataCommand) (*ExtractTicketDataResult, error) {
	if len(cmd.Document) == 0 {
		return nil, errors.NewValidationError("document is required")
	}

	data, err := uc.extractor.Extract(ctx, cmd.Document, cmd.MimeType)
	if err != nil {
		uc.logger.Warnw("document extraction failed", "error", err)

		var extractionErr *extraction.ExtractionError
		if goerrors.As(err, &extractionErr) {
			return nil, errors.NewExtractionError(
				"Failed to extract data from the document. Please enter details manually.",
				extractionErr.Err.Error(),
			)
		}
		return nil, err
	}

	return &ExtractTicketDataResult{Data: data}, nil
}
