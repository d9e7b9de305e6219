package huggingface

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minute-planner/api"
	"minute-planner/apperrors"
)

var testModels = Models{QA: "qa-model", Sentiment: "org/sentiment-model", NER: "ner-model"}

func TestHuggingFaceApiClient_Requests(t *testing.T) {
	tests := []struct {
		name     string
		call     func(c *HuggingFaceApiClient) (json.RawMessage, error)
		wantPath string
		wantBody map[string]string
	}{
		{
			name: "question answering",
			call: func(c *HuggingFaceApiClient) (json.RawMessage, error) {
				return c.AnswerQuestion(context.Background(), "Where?", "I want to visit Rome")
			},
			wantPath: "/qa-model",
			wantBody: map[string]string{"question": "Where?", "context": "I want to visit Rome"},
		},
		{
			name: "sentiment",
			call: func(c *HuggingFaceApiClient) (json.RawMessage, error) {
				return c.ClassifySentiment(context.Background(), "so excited")
			},
			wantPath: "/org/sentiment-model",
			wantBody: map[string]string{"inputs": "so excited"},
		},
		{
			name: "ner",
			call: func(c *HuggingFaceApiClient) (json.RawMessage, error) {
				return c.RecognizeEntities(context.Background(), "Paris in May")
			},
			wantPath: "/ner-model",
			wantBody: map[string]string{"inputs": "Paris in May"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var received map[string]string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, tt.wantPath, r.URL.Path)
				assert.Equal(t, "Bearer hf-key", r.Header.Get("Authorization"))
				require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
				w.Write([]byte(`[{"score": 0.9}]`))
			}))
			defer srv.Close()

			client := NewHuggingFaceApiClient(api.NewHTTPClient("huggingface", srv.URL, time.Second), "hf-key", testModels)
			raw, err := tt.call(client)

			require.NoError(t, err)
			assert.JSONEq(t, `[{"score": 0.9}]`, string(raw))
			assert.Equal(t, tt.wantBody, received)
		})
	}
}

func TestHuggingFaceApiClient_ModelLoading(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error": "Model is currently loading", "estimated_time": 20}`))
	}))
	defer srv.Close()

	client := NewHuggingFaceApiClient(api.NewHTTPClient("huggingface", srv.URL, time.Second), "hf-key", testModels)
	_, err := client.ClassifySentiment(context.Background(), "hi")

	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}

func TestHuggingFaceApiClient_MissingKey(t *testing.T) {
	client := NewHuggingFaceApiClient(api.NewHTTPClient("huggingface", "http://127.0.0.1:0", time.Second), "", testModels)

	_, err := client.RecognizeEntities(context.Background(), "hi")

	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestHuggingFaceApiClientMock(t *testing.T) {
	client := NewHuggingFaceApiClientMock("../../resources")

	qa, err := client.AnswerQuestion(context.Background(), "Where does the person want to travel?", "")
	require.NoError(t, err)
	assert.Contains(t, string(qa), "answer")

	unknown, err := client.AnswerQuestion(context.Background(), "What is the meaning of life?", "")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(unknown))

	_, err = client.ClassifySentiment(context.Background(), "")
	assert.NoError(t, err)
	_, err = client.RecognizeEntities(context.Background(), "")
	assert.NoError(t, err)
}
