package handler

import "github.com/meatkonnex/backend/internal/interfaces/http/dto"

// APIResponse documents the success envelope with a typed data field.
// Handlers write dto.Response; this type only feeds the OpenAPI schema.
// @Description Response envelope
type APIResponse[T any] struct {
	Success bool           `json:"success" example:"true"`
	Data    T              `json:"data,omitempty"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
}

// ErrorResponse documents the failure envelope
// @Description Error envelope carrying a code, a message and the request id
type ErrorResponse struct {
	Success bool           `json:"success" example:"false"`
	Error   *dto.ErrorInfo `json:"error"`
}
