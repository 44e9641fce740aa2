package routing

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizedServeMux(t *testing.T) {
	mux := NewNormalizedServeMux()
	mux.HandleFunc("GET /picker/v1/gpu", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name string
		path string
		code int
	}{
		{"exact", "/picker/v1/gpu", http.StatusOK},
		{"doubled slash", "/picker//v1/gpu", http.StatusOK},
		{"leading doubled slash", "//picker/v1/gpu", http.StatusOK},
		{"trailing slash", "/picker/v1/gpu/", http.StatusOK},
		{"unknown", "/picker/v1/other", http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			mux.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.code, recorder.Code)
		})
	}
}
