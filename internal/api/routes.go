package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nguyentantai21042004/digest-flow/internal/logger"
	"github.com/nguyentantai21042004/digest-flow/internal/metrics"
)

func (s *implServer) routes() {
	s.echo.GET("/health", s.health)
	s.echo.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	s.echo.POST("/summarize", s.summarize)
}

func (s *implServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// requestLogger tags the request context with the X-Request-ID assigned by
// middleware.RequestID and logs one line per request.
func (s *implServer) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		ctx := logger.WithRequestID(req.Context(), c.Response().Header().Get(echo.HeaderXRequestID))
		c.SetRequest(req.WithContext(ctx))

		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}
		s.logger.Info(ctx, "%s %s -> %d (%s)", req.Method, req.URL.Path, c.Response().Status, time.Since(start))
		return nil
	}
}
