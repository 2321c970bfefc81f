package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoveryConvertsPanicTo500(t *testing.T) {
	handler := Recovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/medication-schedules", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, `{"message":"Something went wrong!"}`, rr.Body.String())
}

func TestRecoveryPassesThrough(t *testing.T) {
	handler := Recovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/health", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestRevokeTokenMissingHeader(t *testing.T) {
	rr := httptest.NewRecorder()
	RevokeToken(rr, httptest.NewRequest("DELETE", "/api/auth/logout", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
