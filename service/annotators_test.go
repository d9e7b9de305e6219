package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"minute-planner/apperrors"
	"minute-planner/logger"
	"minute-planner/models"
)

func TestSentimentAnnotator_AnalyzeSentiment(t *testing.T) {
	tests := []struct {
		name string
		resp string
		want models.SentimentResult
	}{
		{
			name: "picks max score",
			resp: `[[{"label": "negative", "score": 0.1}, {"label": "positive", "score": 0.8}, {"label": "neutral", "score": 0.1}]]`,
			want: models.SentimentResult{Sentiment: "positive", Confidence: 0.8},
		},
		{
			name: "single entry",
			resp: `[[{"label": "negative", "score": 0.97}]]`,
			want: models.SentimentResult{Sentiment: "negative", Confidence: 0.97},
		},
		{"empty list", `[]`, models.SentimentResult{Sentiment: "NEUTRAL", Confidence: 0.5}},
		{"empty inner list", `[[]]`, models.SentimentResult{Sentiment: "NEUTRAL", Confidence: 0.5}},
		{"flat list", `[{"label": "positive", "score": 0.9}]`, models.SentimentResult{Sentiment: "NEUTRAL", Confidence: 0.5}},
		{"object", `{"error": "loading"}`, models.SentimentResult{Sentiment: "NEUTRAL", Confidence: 0.5}},
		{"missing score", `[[{"label": "positive"}]]`, models.SentimentResult{Sentiment: "NEUTRAL", Confidence: 0.5}},
		{"string score", `[[{"label": "positive", "score": "high"}]]`, models.SentimentResult{Sentiment: "NEUTRAL", Confidence: 0.5}},
		{"not json", `oops`, models.SentimentResult{Sentiment: "NEUTRAL", Confidence: 0.5}},
		{"score above one", `[[{"label": "positive", "score": 7}]]`, models.SentimentResult{Sentiment: "NEUTRAL", Confidence: 0.5}},
		{"negative score", `[[{"label": "positive", "score": 0.6}, {"label": "negative", "score": -1}]]`, models.SentimentResult{Sentiment: "NEUTRAL", Confidence: 0.5}},
		{"boundary scores", `[[{"label": "positive", "score": 1}, {"label": "negative", "score": 0}]]`, models.SentimentResult{Sentiment: "positive", Confidence: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hf := &MockHuggingFaceAPI{}
			hf.On("ClassifySentiment", mock.Anything, "text").Return(tt.resp, nil)
			annotator := NewSentimentAnnotator(hf, logger.NewNoOpLogger())

			got, err := annotator.AnalyzeSentiment(context.Background(), "text")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSentimentAnnotator_CallFailurePropagates(t *testing.T) {
	hf := &MockHuggingFaceAPI{}
	hf.On("ClassifySentiment", mock.Anything, "text").Return(nil, apperrors.Upstream("huggingface", errors.New("timeout")))
	annotator := NewSentimentAnnotator(hf, logger.NewNoOpLogger())

	_, err := annotator.AnalyzeSentiment(context.Background(), "text")

	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}

func TestEntityExtractor_ExtractLocations(t *testing.T) {
	tests := []struct {
		name string
		resp string
		want []models.LocationMention
	}{
		{
			name: "filters by group and score",
			resp: `[{"entity_group": "LOC", "word": "Paris", "score": 0.92}, {"entity_group": "PER", "word": "Alice", "score": 0.99}]`,
			want: []models.LocationMention{{Location: "Paris", Confidence: 0.92}},
		},
		{
			name: "keeps emission order and drops the threshold",
			resp: `[{"entity_group": "LOC", "word": "Rome", "score": 0.95},
				{"entity_group": "LOC", "word": "Naples", "score": 0.8},
				{"entity_group": "LOC", "word": "Milan", "score": 0.81}]`,
			want: []models.LocationMention{{Location: "Rome", Confidence: 0.95}, {Location: "Milan", Confidence: 0.81}},
		},
		{"missing score", `[{"entity_group": "LOC", "word": "Rome"}]`, []models.LocationMention{}},
		{"empty", `[]`, []models.LocationMention{}},
		{"not a list", `{"error": "loading"}`, []models.LocationMention{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hf := &MockHuggingFaceAPI{}
			hf.On("RecognizeEntities", mock.Anything, "text").Return(tt.resp, nil)
			extractor := NewEntityExtractor(hf, logger.NewNoOpLogger())

			got, err := extractor.ExtractLocations(context.Background(), "text")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEntityExtractor_CallFailurePropagates(t *testing.T) {
	hf := &MockHuggingFaceAPI{}
	hf.On("RecognizeEntities", mock.Anything, "text").Return(nil, apperrors.Upstream("huggingface", errors.New("500")))
	extractor := NewEntityExtractor(hf, logger.NewNoOpLogger())

	_, err := extractor.ExtractLocations(context.Background(), "text")

	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}
