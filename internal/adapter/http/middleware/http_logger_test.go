package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loggedRouter(logs *bytes.Buffer, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := slog.New(slog.NewJSONHandler(logs, nil))
	r := gin.New()
	r.Use(Logging(l))
	r.POST("/checkout", handler)
	return r
}

func postJSON(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoggingHandlerSeesOriginalBody(t *testing.T) {
	var logs bytes.Buffer
	var seen string
	r := loggedRouter(&logs, func(c *gin.Context) {
		b, err := io.ReadAll(c.Request.Body)
		require.NoError(t, err)
		seen = string(b)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	body := `{"shippingAddress":{"firstName":"Ayesha","phone":"+92-300-1234567","street":"12 Canal Road","city":"Lahore","province":"Punjab"}}`
	w := postJSON(r, body)
	require.Equal(t, http.StatusOK, w.Code)

	// the handler must parse the real address, not the redacted log copy
	assert.Contains(t, seen, "+92-300-1234567")
	assert.Contains(t, seen, "12 Canal Road")
	assert.NotContains(t, seen, "redacted")
}

func TestLoggingRedactsPIIInLogOnly(t *testing.T) {
	var logs bytes.Buffer
	r := loggedRouter(&logs, func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	postJSON(r, `{"phone":"+92-300-1234567","email":"a@b.pk","city":"Lahore"}`)

	out := logs.String()
	assert.Contains(t, out, "***redacted***")
	assert.NotContains(t, out, "+92-300-1234567")
	assert.NotContains(t, out, "a@b.pk")
	assert.Contains(t, out, "Lahore") // only PII keys are scrubbed
}

func TestLoggingOversizedBodyStaysParseable(t *testing.T) {
	var logs bytes.Buffer
	var seen int
	r := loggedRouter(&logs, func(c *gin.Context) {
		b, err := io.ReadAll(c.Request.Body)
		require.NoError(t, err)
		seen = len(b)
		c.Status(http.StatusNoContent)
	})

	big := `{"note":"` + strings.Repeat("x", 3*reqBodyLimit) + `"}`
	postJSON(r, big)

	// the full body reaches the handler; only the log copy is capped
	assert.Equal(t, len(big), seen)
	assert.Contains(t, logs.String(), "...truncated...")
}
