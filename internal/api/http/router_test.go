package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"platefeed/internal/mocks"

	"github.com/stretchr/testify/assert"
)

// Browser clients send a preflight before POSTing the feed request; the
// CORS layer must answer it without touching the handler.
func TestRouter_CORSPreflight(t *testing.T) {
	mockSvc := mocks.NewFeedServiceInterface(t)
	router := NewRouter(NewHandler(mockSvc))

	req := httptest.NewRequest("OPTIONS", "/api/feed", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
}
