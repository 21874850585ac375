package lambda

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/diillson/ebs-snapshot-expiry-go/internal/application/usecase"
	"github.com/diillson/ebs-snapshot-expiry-go/internal/shared/types"
)

// Response is the invocation envelope returned to the Lambda runtime: the
// serialized run summary on success, or an error document on failure.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// Handler adapta o ScanUseCase ao limite de invocação do Lambda. Toda falha
// abaixo desse limite já foi absorvida pelo caso de uso; o que sobrar aqui
// vira uma resposta 500, nunca um crash do processo.
type Handler struct {
	scanUseCase *usecase.ScanUseCase
	cfg         types.ScanConfig
	logger      zerolog.Logger
}

// NewHandler creates a new Lambda handler.
func NewHandler(scanUseCase *usecase.ScanUseCase, cfg types.ScanConfig, logger zerolog.Logger) *Handler {
	return &Handler{
		scanUseCase: scanUseCase,
		cfg:         cfg,
		logger:      logger,
	}
}

// Handle executa um scan completo e devolve o envelope {statusCode, body}.
// O payload do evento é ignorado: a configuração vem do ambiente.
func (h *Handler) Handle(ctx context.Context, _ json.RawMessage) (response Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error().Interface("panic", r).Msg("unhandled panic in scan run")
			response = errorResponse(fmt.Sprintf("unhandled panic: %v", r))
			err = nil
		}
	}()

	result, runErr := h.scanUseCase.Run(ctx, h.cfg)
	if runErr != nil {
		h.logger.Error().Err(runErr).Msg("scan run failed")
		return errorResponse(runErr.Error()), nil
	}

	body, marshalErr := json.Marshal(result.Summary)
	if marshalErr != nil {
		h.logger.Error().Err(marshalErr).Msg("failed to serialize run summary")
		return errorResponse(marshalErr.Error()), nil
	}

	return Response{StatusCode: 200, Body: string(body)}, nil
}

func errorResponse(message string) Response {
	body, err := json.Marshal(map[string]string{"error": message})
	if err != nil {
		body = []byte(`{"error":"internal error"}`)
	}
	return Response{StatusCode: 500, Body: string(body)}
}
