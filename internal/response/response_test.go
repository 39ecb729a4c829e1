package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestFailEnvelope(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/x", func(c *gin.Context) { Fail(c, http.StatusConflict, ErrClassSoldOut) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Header().Get(HeaderRequestID) != "req-1" {
		t.Fatalf("request id not echoed: %q", w.Header().Get(HeaderRequestID))
	}
	var body Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Error == nil || body.Error.Code != ErrClassSoldOut || body.Error.Message != GetMessage(ErrClassSoldOut) {
		t.Fatalf("unexpected error body %+v", body.Error)
	}
	if body.Metadata.RequestID != "req-1" || body.Metadata.Timestamp == "" {
		t.Fatalf("unexpected metadata %+v", body.Metadata)
	}
}

func TestRequestIDWithoutMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/x", func(c *gin.Context) { Success(c, http.StatusOK, gin.H{"ok": true}) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	var body Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Metadata.RequestID == "" {
		t.Fatal("expected a generated request id")
	}
	if body.Error != nil {
		t.Fatalf("unexpected error %+v", body.Error)
	}
}

func TestEveryCodeHasMessage(t *testing.T) {
	codes := []ErrCode{
		ErrTokenRequired, ErrTokenInvalid, ErrTokenExpired, ErrForbidden,
		ErrValidation, ErrInvalidID, ErrInvalidPayload, ErrNotFound, ErrConflict,
		ErrClassSoldOut, ErrEmptyCheckout, ErrStoreUnavailable, ErrPaymentProvider,
		ErrRateLimitExceeded, ErrInternal,
	}
	fallback := GetMessage("UNKNOWN")
	for _, code := range codes {
		if GetMessage(code) == fallback {
			t.Errorf("%s uses the fallback message", code)
		}
	}
}

func TestListReportsCount(t *testing.T) {
	r := gin.New()
	r.GET("/some", func(c *gin.Context) { List(c, []string{"hatha", "yin"}) })
	r.GET("/none", func(c *gin.Context) { List[string](c, nil) })

	tests := []struct {
		path  string
		data  string
		count int
	}{
		{"/some", `["hatha","yin"]`, 2},
		{"/none", `[]`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			var body struct {
				Data     json.RawMessage `json:"data"`
				Metadata Metadata        `json:"metadata"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			if string(body.Data) != tt.data {
				t.Errorf("data = %s, want %s", body.Data, tt.data)
			}
			if body.Metadata.Count == nil || *body.Metadata.Count != tt.count {
				t.Errorf("count = %v, want %d", body.Metadata.Count, tt.count)
			}
		})
	}
}
