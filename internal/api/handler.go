package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nguyentantai21042004/digest-flow/internal/lang"
	"github.com/nguyentantai21042004/digest-flow/internal/metrics"
)

type summarizeRequest struct {
	Text      string `json:"text"`
	Precision string `json:"precision"`
	Target    string `json:"target"`
}

type healthResponse struct {
	Status    string          `json:"status"`
	Languages []lang.Language `json:"languages"`
}

func (s *implServer) health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Status: "ok", Languages: lang.Order})
}

func (s *implServer) summarize(c echo.Context) error {
	var body summarizeRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed request body"})
	}

	req, problems := s.defaults.Request(body.Text, body.Precision, body.Target)
	if len(problems) > 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request", Problems: problems})
	}

	ctx := c.Request().Context()
	if err := s.sem.acquire(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "server busy"})
	}
	defer s.sem.release()

	start := time.Now()
	metrics.InFlight.Inc()
	resp, err := s.summarizer.Summarize(ctx, req)
	metrics.InFlight.Dec()
	metrics.RecordSummary(string(req.Target), metrics.Outcome(err), time.Since(start).Seconds())
	if err != nil {
		s.logger.Error(ctx, "Summarize failed: %v", err)
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}
