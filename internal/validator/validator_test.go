package validator

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type cartPayload struct {
	ClassID  string `json:"classId" binding:"required,objectid"`
	UserMail string `json:"userMail" binding:"required,email"`
}

func bindBody(t *testing.T, body string) map[string]string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	Setup()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var dst cartPayload
	return Bind(c, &dst)
}

func TestBindValid(t *testing.T) {
	if fields := bindBody(t, `{"classId":"65a1b2c3d4e5f60718293a4b","userMail":"ana@example.com"}`); fields != nil {
		t.Fatalf("unexpected errors %v", fields)
	}
}

func TestBindUsesJSONFieldNames(t *testing.T) {
	fields := bindBody(t, `{"classId":"not-an-id","userMail":"nope"}`)
	if fields["classId"] != "classId must be a valid id" {
		t.Fatalf("classId = %q", fields["classId"])
	}
	if fields["userMail"] == "" {
		t.Fatalf("expected userMail error, got %v", fields)
	}
}

func TestBindSyntaxError(t *testing.T) {
	fields := bindBody(t, `{"classId":`)
	if fields["detail"] == "" {
		t.Fatalf("expected detail for malformed json, got %v", fields)
	}
}
