package handler // handler package contains the invoice webhook relay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/model"
	"github.com/VennityVlad/zuitzerland-59-sub000/internal/repository"
)

// signatureHeader carries the provider's hex encoded HMAC-SHA256 of
// the raw request body, optionally prefixed with "sha256=".
const signatureHeader = "X-Webhook-Signature"

// WebhookHandler ingests invoice status events from the billing
// provider.  It is the only writer of invoice rows; everything else in
// the service treats them as read only eligibility input.
type WebhookHandler struct {
	InvoiceRepo *repository.InvoiceRepo // invoice persistence
	ProfileRepo *repository.ProfileRepo // referenced profile must exist
	Secret      string                  // shared HMAC secret
}

// NewWebhookHandler constructs a WebhookHandler and panics on nil
// repos or an empty secret.
func NewWebhookHandler(invoiceRepo *repository.InvoiceRepo, profileRepo *repository.ProfileRepo, secret string) *WebhookHandler {
	if invoiceRepo == nil || profileRepo == nil {
		panic("nil repository passed to NewWebhookHandler")
	}
	if secret == "" {
		panic("empty webhook secret passed to NewWebhookHandler")
	}
	return &WebhookHandler{InvoiceRepo: invoiceRepo, ProfileRepo: profileRepo, Secret: secret}
}

// invoiceEvent is the provider's payload shape.
type invoiceEvent struct {
	ExternalRef string `json:"external_ref"` // provider's invoice id
	ProfileID   string `json:"profile_id"`   // our profile id
	Status      string `json:"status"`       // provider status string
	AmountCents int64  `json:"amount_cents"` // invoice amount
}

// HandleInvoice handles POST /webhooks/invoices.  The signature is
// verified over the raw body before anything is parsed; a bad
// signature is indistinguishable from a wrong secret, so both get a
// plain 401.  Events are upserted by external_ref, which makes
// provider retries idempotent.
func (h *WebhookHandler) HandleInvoice(c echo.Context) error {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "could not read request body"})
	}
	if !h.verify(c.Request().Header.Get(signatureHeader), raw) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid signature"})
	}

	var ev invoiceEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON payload"})
	}
	ev.ExternalRef = strings.TrimSpace(ev.ExternalRef)
	ev.ProfileID = strings.TrimSpace(ev.ProfileID)
	ev.Status = strings.TrimSpace(ev.Status)
	if ev.ExternalRef == "" || ev.ProfileID == "" || ev.Status == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "external_ref, profile_id and status are required"})
	}
	if _, err := h.ProfileRepo.GetByID(c.Request().Context(), ev.ProfileID); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	inv := &model.Invoice{
		ProfileID:   ev.ProfileID,
		Status:      ev.Status,
		AmountCents: ev.AmountCents,
		ExternalRef: ev.ExternalRef,
	}
	if err := h.InvoiceRepo.UpsertByExternalRef(c.Request().Context(), inv); err != nil {
		log.Printf("webhook: invoice upsert failed for %s: %v", ev.ExternalRef, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not store invoice"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "invoice_id": inv.ID})
}

// verify checks the hex HMAC-SHA256 signature against the raw body in
// constant time.
func (h *WebhookHandler) verify(header string, body []byte) bool {
	header = strings.TrimPrefix(strings.TrimSpace(header), "sha256=")
	got, err := hex.DecodeString(header)
	if err != nil || len(got) == 0 {
		return false
	}
	mac := hmac.New(sha256.New, []byte(h.Secret))
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}
