package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSONSuccess(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteJSONSuccess(rr, http.StatusOK, map[string]int{"total": 3})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.JSONEq(t, `{"data":{"total":3},"error":null}`, rr.Body.String())
}

func TestWriteJSONError(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteJSONError(rr, http.StatusBadRequest, ErrCodeBadRequest, `invalid sort: "price"`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"data":null,"error":{"code":"bad_request","message":"invalid sort: \"price\""}}`, rr.Body.String())
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeBadRequest, ErrorCode(http.StatusBadRequest))
	assert.Equal(t, ErrCodeInternalError, ErrorCode(http.StatusInternalServerError))
	assert.Equal(t, ErrCodeInternalError, ErrorCode(http.StatusServiceUnavailable))
}
