package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/event-quote-service/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(ErrorCodeNotFound, "quotation not found").WithTraceID("trace-1")

	assert.Equal(t, ErrorCodeNotFound, resp.Error.Code)
	assert.Equal(t, "quotation not found", resp.Error.Message)
	assert.Nil(t, resp.Error.Details)
	assert.Equal(t, "trace-1", resp.TraceID)

	detailed := NewErrorResponseWithDetails(ErrorCodeValidation, "invalid", map[string]string{"guestCount": "must not be negative"})
	assert.Equal(t, "must not be negative", detailed.Error.Details["guestCount"])
}

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeBadRequest, http.StatusBadRequest},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeTimeout, http.StatusGatewayTimeout},
		{ErrorCodeInternal, http.StatusInternalServerError},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusFromCode(tt.code))
		})
	}
}

func TestGetTraceID(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*gin.Context)
		want  string
	}{
		{
			name:  "context value",
			setup: func(c *gin.Context) { c.Set("trace_id", "ctx-123") },
			want:  "ctx-123",
		},
		{
			name:  "request id header",
			setup: func(c *gin.Context) { c.Request.Header.Set("X-Request-ID", "hdr-456") },
			want:  "hdr-456",
		},
		{
			name: "context value wins",
			setup: func(c *gin.Context) {
				c.Set("trace_id", "ctx-123")
				c.Request.Header.Set("X-Request-ID", "hdr-456")
			},
			want: "ctx-123",
		},
		{
			name:  "non-string context value",
			setup: func(c *gin.Context) { c.Set("trace_id", 12345) },
			want:  "",
		},
		{
			name:  "none",
			setup: func(*gin.Context) {},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			tt.setup(c)

			assert.Equal(t, tt.want, GetTraceID(c))
		})
	}
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetail  string
	}{
		{
			name:        "not found",
			err:         domain.NewNotFoundError(domain.EntityQuotation, "q-1"),
			wantStatus:  http.StatusNotFound,
			wantCode:    ErrorCodeNotFound,
			wantMessage: "q-1",
		},
		{
			name:        "wrapped not found",
			err:         fmt.Errorf("update quotation: %w", domain.NewNotFoundError(domain.EntityLineItem, "l-9")),
			wantStatus:  http.StatusNotFound,
			wantCode:    ErrorCodeNotFound,
			wantMessage: "l-9",
		},
		{
			name:        "conflict",
			err:         domain.NewConflictError(domain.EntityLineItem, "duplicate line id"),
			wantStatus:  http.StatusConflict,
			wantCode:    ErrorCodeConflict,
			wantMessage: "duplicate line id",
		},
		{
			name:        "domain validation",
			err:         domain.NewValidationError("quantity", "must be at least 1"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrorCodeValidation,
			wantMessage: "quantity",
			wantDetail:  "quantity",
		},
		{
			name:        "binding",
			err:         fmt.Errorf("%w: unexpected EOF", ErrBinding),
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrorCodeBadRequest,
			wantMessage: "malformed request body",
		},
		{
			name:        "unavailable",
			err:         domain.NewUnavailableError("redis", "dial tcp 10.0.0.7:6379: refused"),
			wantStatus:  http.StatusServiceUnavailable,
			wantCode:    ErrorCodeUnavailable,
			wantMessage: "temporarily unavailable",
		},
		{
			name:        "unknown",
			err:         errors.New("disk on fire"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    ErrorCodeInternal,
			wantMessage: "an internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Set("trace_id", "trace-"+tt.name)

			HandleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Contains(t, resp.Error.Message, tt.wantMessage)
			assert.Equal(t, "trace-"+tt.name, resp.TraceID)
			assert.NotContains(t, resp.Error.Message, "10.0.0.7")

			if tt.wantDetail != "" {
				assert.Contains(t, resp.Error.Details, tt.wantDetail)
			}
		})
	}
}

func TestMapDomainError_ValidatorDetails(t *testing.T) {
	err := Validate(&RecommendationRequest{GuestCount: -3})
	require.Error(t, err)

	status, resp := MapDomainError(err)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, ErrorCodeValidation, resp.Error.Code)
	assert.Equal(t, "this field is required", resp.Error.Details["eventType"])
	assert.Equal(t, "must be greater than or equal to 0", resp.Error.Details["guestCount"])
}
