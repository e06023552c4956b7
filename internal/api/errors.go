package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nguyentantai21042004/digest-flow/internal/annotator"
	"github.com/nguyentantai21042004/digest-flow/internal/summarizer"
	"github.com/nguyentantai21042004/digest-flow/internal/translator"
)

type errorResponse struct {
	Error    string   `json:"error"`
	Problems []string `json:"problems,omitempty"`
}

// statusFor maps a summarizer failure to an HTTP status. Collaborator
// failures are upstream errors, not client mistakes.
func statusFor(err error) int {
	var (
		verr *summarizer.ValidationError
		terr *translator.Error
		aerr *annotator.Error
	)
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, summarizer.ErrEmptyContent):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.As(err, &terr), errors.As(err, &aerr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c echo.Context, err error) error {
	resp := errorResponse{Error: err.Error()}
	var verr *summarizer.ValidationError
	if errors.As(err, &verr) {
		resp = errorResponse{Error: "invalid request", Problems: verr.Problems}
	}
	return c.JSON(statusFor(err), resp)
}
