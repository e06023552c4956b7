package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/nguyentantai21042004/digest-flow/internal/config"
	"github.com/nguyentantai21042004/digest-flow/internal/logger"
	"github.com/nguyentantai21042004/digest-flow/internal/summarizer"
)

type implServer struct {
	echo       *echo.Echo
	addr       string
	summarizer summarizer.Summarizer
	defaults   summarizer.Defaults
	sem        *semaphore
	logger     logger.Logger
}

// New builds the HTTP API around sum. At most maxConcurrent summaries run at
// a time; further requests wait for a slot.
func New(cfg config.ServerConfig, maxConcurrent int, defaults summarizer.Defaults, sum summarizer.Summarizer, log logger.Logger) Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &implServer{
		echo:       e,
		addr:       cfg.Addr,
		summarizer: sum,
		defaults:   defaults,
		sem:        newSemaphore(maxConcurrent),
		logger:     log,
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(s.requestLogger)
	if cfg.BodyLimit != "" {
		e.Use(middleware.BodyLimit(cfg.BodyLimit))
	}
	if cfg.RateLimit > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimit))))
	}

	s.routes()
	return s
}
