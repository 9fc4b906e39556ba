package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestWebhookVerify(t *testing.T) {
	h := &WebhookHandler{Secret: "topsecret"}
	body := []byte(`{"external_ref":"inv-1"}`)
	sig := sign("topsecret", body)

	require.True(t, h.verify(sig, body))
	require.True(t, h.verify("sha256="+sig, body), "provider prefix must be accepted")
	require.False(t, h.verify(sig, []byte(`tampered`)))
	require.False(t, h.verify(sign("wrong", body), body))
	require.False(t, h.verify("", body))
	require.False(t, h.verify("not-hex", body))
}

func webhookContext(body string, sig string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/invoices", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if sig != "" {
		req.Header.Set(signatureHeader, sig)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandleInvoice_RejectsBadSignature(t *testing.T) {
	h := &WebhookHandler{Secret: "topsecret"}
	body := `{"external_ref":"inv-1","profile_id":"p-1","status":"paid","amount_cents":120000}`

	c, rec := webhookContext(body, sign("some-other-secret", []byte(body)))
	require.NoError(t, h.HandleInvoice(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	c, rec = webhookContext(body, "")
	require.NoError(t, h.HandleInvoice(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleInvoice_RejectsInvalidPayload(t *testing.T) {
	h := &WebhookHandler{Secret: "topsecret"}

	body := `{"external_ref":`
	c, rec := webhookContext(body, sign("topsecret", []byte(body)))
	require.NoError(t, h.HandleInvoice(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Signed correctly but missing required fields.
	body = `{"external_ref":"","profile_id":"p-1","status":"paid"}`
	c, rec = webhookContext(body, sign("topsecret", []byte(body)))
	require.NoError(t, h.HandleInvoice(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
