package rotate

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/vpnchainer/vpn-chainer/pkg/logger"
)

const readHeaderTimeout = 10 * time.Second

// Server is the HTTP listener for the rotation API.
type Server struct {
	echo *echo.Echo
	addr string
	log  zerolog.Logger
}

// NewServer builds the echo instance with recovery, request IDs and access
// logging, and mounts h on it.
func NewServer(addr string, h *Handler, log zerolog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	// the API is reached directly, proxy headers are not trusted
	e.IPExtractor = echo.ExtractIPDirect()
	e.Server.ReadHeaderTimeout = readHeaderTimeout

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(injectLogger(log))
	e.Use(accessLogger(log))

	h.Register(e)

	return &Server{echo: e, addr: addr, log: log}
}

// Handler returns the underlying http.Handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves until Shutdown is called. It returns nil after a clean
// shutdown.
func (s *Server) Start() error {
	s.log.Info().
		Str(logger.FieldLayer, "adapter").
		Str(logger.FieldAdapter, "http.rotate").
		Str("addr", s.addr).
		Msg("rotation API listening")

	if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones until ctx
// ends.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// injectLogger carries the process logger on the request context so use
// cases can fetch it with logger.FromCtx.
func injectLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			reqLog := log.With().
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Logger()
			c.SetRequest(req.WithContext(logger.WithCtx(req.Context(), reqLog)))
			return next(c)
		}
	}
}

// accessLogger logs one line per request. The query string is left out so
// the API key never reaches the logs.
func accessLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURIPath:   true,
		LogMethod:    true,
		LogRemoteIP:  true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			log.Info().
				Str(logger.FieldLayer, "adapter").
				Str(logger.FieldAdapter, "http").
				Str("request_id", v.RequestID).
				Str(logger.FieldMethod, v.Method).
				Str(logger.FieldPath, v.URIPath).
				Str(logger.FieldClientIP, v.RemoteIP).
				Int(logger.FieldStatus, v.Status).
				Dur(logger.FieldDuration, v.Latency).
				Msg("HTTP request")
			return nil
		},
	})
}
