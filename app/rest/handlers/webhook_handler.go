package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"workbook-auth/app/driver/roster"
	apperrors "workbook-auth/app/utils/errors"
)

// SignatureHeader carries the hex HMAC-SHA256 of the raw webhook body.
const SignatureHeader = "X-Webhook-Signature"

// WebhookHandler ingests membership events from the community platform
// into the webhook-synced roster.
type WebhookHandler struct {
	store  *roster.Store
	secret []byte
	logger *slog.Logger
}

// NewWebhookHandler creates a webhook handler.
func NewWebhookHandler(store *roster.Store, secret string, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		store:  store,
		secret: []byte(secret),
		logger: logger.With("component", "webhook_handler"),
	}
}

// HandleMembershipEvent handles POST /v1/webhooks/membership. An invalid
// signature is a 401; the event payload is validated by the roster store.
func (h *WebhookHandler) HandleMembershipEvent(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, 1<<20))
	if err != nil {
		return respondError(c, apperrors.New(apperrors.ErrCodeBadRequest, "unreadable body"))
	}

	if !h.verifySignature(body, c.Request().Header.Get(SignatureHeader)) {
		h.logger.Warn("webhook signature mismatch", "ip", c.RealIP())
		return respondError(c, apperrors.New(apperrors.ErrCodeUnauthorized, "invalid signature"))
	}

	var event roster.MemberEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return respondError(c, apperrors.New(apperrors.ErrCodeBadRequest, "malformed event payload"))
	}

	if err := h.store.Apply(event); err != nil {
		return respondError(c, apperrors.New(apperrors.ErrCodeValidationFailed, err.Error()))
	}

	h.logger.Info("membership event applied", "type", event.Type)
	return c.NoContent(http.StatusNoContent)
}

func (h *WebhookHandler) verifySignature(body []byte, signature string) bool {
	if len(h.secret) == 0 || signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, h.secret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
