// Package rotate exposes the authenticated rotation trigger over HTTP.
package rotate

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/vpnchainer/vpn-chainer/internal/boundaries/in"
	"github.com/vpnchainer/vpn-chainer/internal/boundaries/out"
	"github.com/vpnchainer/vpn-chainer/internal/domain"
	"github.com/vpnchainer/vpn-chainer/pkg/logger"
)

const (
	// RotatePath triggers exactly one rotation per accepted request.
	RotatePath = "/rotate_vpn"
	// StatusPath serves a read-only chain snapshot.
	StatusPath = "/status"

	rotatedMessage = "VPN rotation completed."
)

// Handler serves the rotation and status endpoints.
type Handler struct {
	chain   in.ChainService
	token   string
	limiter out.RateLimiter
	log     zerolog.Logger
}

// NewHandler creates a handler accepting requests that present token.
// limiter may be nil to disable per-client rate limiting.
func NewHandler(chain in.ChainService, token string, limiter out.RateLimiter, log zerolog.Logger) *Handler {
	return &Handler{
		chain:   chain,
		token:   token,
		limiter: limiter,
		log:     log,
	}
}

// Register mounts the handler routes on e.
func (h *Handler) Register(e *echo.Echo) {
	e.GET(RotatePath, h.rotate)
	e.GET(StatusPath, h.status)
}

func (h *Handler) rotate(c echo.Context) error {
	ctx := logger.CtxWithFields(c.Request().Context(), map[string]any{
		logger.FieldLayer:    "adapter",
		logger.FieldAdapter:  "http.rotate",
		logger.FieldAction:   "rotate",
		logger.FieldClientIP: c.RealIP(),
	})
	log := logger.FromCtx(ctx)

	if ok, err := h.admit(ctx, c); !ok {
		return err
	}

	log.Info().Msg("rotation requested")

	// A started rotation always runs to completion; a client hanging up
	// must not interrupt wg-quick halfway through a hop.
	err := h.chain.Rotate(context.WithoutCancel(ctx))
	switch {
	case err == nil:
		log.Info().Msg("rotation completed")
		return c.JSON(http.StatusOK, MessageResponse{Message: rotatedMessage})

	case errors.Is(err, domain.ErrHookExecution) && h.chain.Status(ctx).State == domain.ChainStateActive:
		log.Warn().Err(err).Msg("rotation completed with a failed hook")
		return c.JSON(http.StatusOK, MessageResponse{Message: rotatedMessage, Warning: err.Error()})

	case errors.Is(err, domain.ErrNoChainRequest):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrChainClosed), errors.Is(err, domain.ErrGuardTimeout):
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})

	default:
		log.Error().Err(err).Msg("rotation failed")
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "rotation failed: " + err.Error()})
	}
}

func (h *Handler) status(c echo.Context) error {
	ctx := logger.CtxWithFields(c.Request().Context(), map[string]any{
		logger.FieldLayer:    "adapter",
		logger.FieldAdapter:  "http.rotate",
		logger.FieldAction:   "status",
		logger.FieldClientIP: c.RealIP(),
	})

	if ok, err := h.admit(ctx, c); !ok {
		return err
	}

	return c.JSON(http.StatusOK, newStatusResponse(h.chain.Status(ctx)))
}

// admit applies the rate limit and then the token check. When it reports
// false the response has already been written and nothing touched the chain.
func (h *Handler) admit(ctx context.Context, c echo.Context) (bool, error) {
	log := logger.FromCtx(ctx)

	if h.limiter != nil && !h.limiter.Allow(ctx, "ip:"+c.RealIP()) {
		log.Warn().Msg("rate limit exceeded")
		return false, c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "too many requests"})
	}

	if err := h.authorize(c.QueryParam("key")); err != nil {
		log.Warn().Err(err).Msg("rejected request")
		return false, c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden: Invalid API Key."})
	}
	return true, nil
}

func (h *Handler) authorize(key string) error {
	if key == "" {
		return &domain.AuthorizationError{Reason: "missing key"}
	}
	if subtle.ConstantTimeCompare([]byte(key), []byte(h.token)) != 1 {
		return &domain.AuthorizationError{Reason: "invalid key"}
	}
	return nil
}
