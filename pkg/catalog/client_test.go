package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modelpickd/pkg/logging"
)

func testLogger() logging.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

const catalogResponse = `[
	{"id": "mlc-ai/Qwen2.5-7B-Instruct-q4f16_1-MLC", "lastModified": "2024-09-19T10:00:00Z"},
	{"id": "mlc-ai/Llama-3-8B-Instruct-q4f16_1-MLC", "lastModified": "2024-04-20T08:30:00Z"},
	{"id": "mlc-ai/gemma-2-9b-it-q4f16_1-MLC", "lastModified": "2024-07-01T12:00:00Z"},
	{"id": "mlc-ai/Llama-3-8B-Instruct-q4f16_1", "lastModified": "2024-04-20T08:30:00Z"},
	{"id": "mlc-ai/RedPajama-Base-q4f16_1-MLC", "lastModified": "2023-06-01T00:00:00Z"},
	{"id": "mlc-ai/MysteryModel-Instruct-q4f16_1-MLC", "lastModified": "2024-01-01T00:00:00Z"}
]`

func TestListCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(catalogResponse))
		require.NoError(t, err)
	}))
	defer server.Close()

	client := NewClient(testLogger(), server.Client(), server.URL)
	candidates, err := client.ListCandidates(context.Background())
	require.NoError(t, err)

	// The non-MLC artifact, the non-Instruct models, and the entry without
	// a parseable parameter count are all discarded.
	require.Len(t, candidates, 2)

	qwen := candidates[0]
	assert.Equal(t, "Qwen2.5-7B-Instruct-q4f16_1-MLC", qwen.ID)
	assert.Equal(t, 7.0, qwen.Params)
	assert.Equal(t, 4900.0, qwen.EstimatedMemoryMB)
	assert.Equal(t, 2024, qwen.LastModified.Year())

	llama := candidates[1]
	assert.Equal(t, "Llama-3-8B-Instruct-q4f16_1-MLC", llama.ID)
	assert.Equal(t, 8.0, llama.Params)
	assert.Equal(t, 5600.0, llama.EstimatedMemoryMB)
}

func TestListCandidatesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(testLogger(), server.Client(), server.URL)
	_, err := client.ListCandidates(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestParseParamCount(t *testing.T) {
	tests := []struct {
		id     string
		params float64
	}{
		{"Qwen2.5-7B-Instruct-q4f16_1-MLC", 7},
		{"Phi-3-mini-4k-instruct-q4f16_1-MLC", 0},
		{"Qwen2.5-1.5B-Instruct-q4f16_1-MLC", 1.5},
		{"TinyLlama-1.1B-Chat-v1.0-q4f16_1-MLC", 1.1},
		{"RedPajama-Base-q4f16_1-MLC", 0},
		{"", 0},
	}
	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			assert.Equal(t, tc.params, parseParamCount(tc.id))
		})
	}
}

func TestEstimateMemoryMB(t *testing.T) {
	assert.Equal(t, 4900.0, EstimateMemoryMB(7))
	assert.Equal(t, 2660.0, EstimateMemoryMB(3.8))
	assert.Equal(t, 0.0, EstimateMemoryMB(0))
}
