package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestOK(t *testing.T) {
	c, w := setupTestContext()

	OK(c, map[string]string{"name": "Acme"})

	assert.Equal(t, http.StatusOK, w.Code)

	var env Envelope
	err := json.Unmarshal(w.Body.Bytes(), &env)
	assert.NoError(t, err)
	assert.NotNil(t, env.Data)
	assert.Nil(t, env.Error)
}

func TestOKEmitsNullError(t *testing.T) {
	c, w := setupTestContext()

	OK(c, map[string]string{})

	var raw map[string]json.RawMessage
	err := json.Unmarshal(w.Body.Bytes(), &raw)
	assert.NoError(t, err)
	assert.Contains(t, raw, "data")
	assert.Contains(t, raw, "error")
	assert.Equal(t, "null", string(raw["error"]))
}

func TestErrorEmitsNullData(t *testing.T) {
	c, w := setupTestContext()

	Error(c, http.StatusBadRequest, "Something went wrong.")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var raw map[string]json.RawMessage
	err := json.Unmarshal(w.Body.Bytes(), &raw)
	assert.NoError(t, err)
	assert.Equal(t, "null", string(raw["data"]))

	var env Envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "Something went wrong.", env.Error.Message)
}

func TestUnauthorized(t *testing.T) {
	c, w := setupTestContext()

	Unauthorized(c, "Unauthorized.")

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var env Envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "Unauthorized.", env.Error.Message)
}

func TestMethodNotAllowed(t *testing.T) {
	router := gin.New()
	router.POST("/teams/acme", func(c *gin.Context) {
		MethodNotAllowed(c, "GET, PUT, DELETE")
	})

	req := httptest.NewRequest(http.MethodPost, "/teams/acme", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "GET, PUT, DELETE", w.Header().Get("Allow"))

	var env Envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "Method POST Not Allowed", env.Error.Message)
}

func TestEnvelopeJSONSerialization(t *testing.T) {
	tests := []struct {
		name     string
		envelope Envelope
		expected string
	}{
		{
			name:     "success with data",
			envelope: Envelope{Data: map[string]string{"slug": "acme"}},
			expected: `{"data":{"slug":"acme"},"error":null}`,
		},
		{
			name:     "error response",
			envelope: Envelope{Error: &APIError{Message: "Something went wrong."}},
			expected: `{"data":null,"error":{"message":"Something went wrong."}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.envelope)
			assert.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}
