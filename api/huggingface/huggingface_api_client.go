package huggingface

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"minute-planner/api"
	"minute-planner/apperrors"
)

var ErrMissingAPIKey = errors.New("HUGGINGFACE_API_KEY not set")

// Models names the inference model used for each task.
type Models struct {
	QA        string
	Sentiment string
	NER       string
}

type qaRequest struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

type inputsRequest struct {
	Inputs string `json:"inputs"`
}

// HuggingFaceApiClient embeds the common HTTPClient
type HuggingFaceApiClient struct {
	*api.HTTPClient
	apiKey string
	models Models
}

func NewHuggingFaceApiClient(httpClient *api.HTTPClient, apiKey string, models Models) *HuggingFaceApiClient {
	return &HuggingFaceApiClient{
		HTTPClient: httpClient,
		apiKey:     apiKey,
		models:     models,
	}
}

func (c *HuggingFaceApiClient) AnswerQuestion(ctx context.Context, question, text string) (json.RawMessage, error) {
	return c.query(ctx, c.models.QA, qaRequest{Question: question, Context: text})
}

func (c *HuggingFaceApiClient) ClassifySentiment(ctx context.Context, text string) (json.RawMessage, error) {
	return c.query(ctx, c.models.Sentiment, inputsRequest{Inputs: text})
}

func (c *HuggingFaceApiClient) RecognizeEntities(ctx context.Context, text string) (json.RawMessage, error) {
	return c.query(ctx, c.models.NER, inputsRequest{Inputs: text})
}

func (c *HuggingFaceApiClient) query(ctx context.Context, model string, payload interface{}) (json.RawMessage, error) {
	if c.apiKey == "" {
		return nil, apperrors.Upstream(c.Provider, ErrMissingAPIKey)
	}
	var response json.RawMessage
	headers := map[string]string{"Authorization": "Bearer " + c.apiKey}
	if err := c.Request(ctx, http.MethodPost, "/"+model, nil, headers, payload, &response); err != nil {
		return nil, err
	}
	return response, nil
}
