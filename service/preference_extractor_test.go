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
)

const tripText = "I want to visit Rome for 5 days with 2 people. We love history, food, art."

// answerAll stubs every question with the answer in answers, or an empty list.
func answerAll(hf *MockHuggingFaceAPI, text string, answers map[PreferenceField]string) {
	for _, q := range PreferenceQuestions {
		resp := `[]`
		if a, ok := answers[q.Field]; ok {
			resp = `[{"answer": "` + a + `", "score": 0.9}, {"answer": "runner-up", "score": 0.1}]`
		}
		hf.On("AnswerQuestion", mock.Anything, q.Question, text).Return(resp, nil)
	}
}

func TestPreferenceExtractor_ExtractPreferences(t *testing.T) {
	hf := &MockHuggingFaceAPI{}
	answerAll(hf, tripText, map[PreferenceField]string{
		FieldDestination:         "Rome",
		FieldDuration:            "5 days",
		FieldTravelers:           "2 people",
		FieldInterests:           "hiking, museums, , food",
		FieldBudget:              "moderate",
		FieldPace:                "relaxed",
		FieldSpecialRequirements: "wheelchair access",
	})
	extractor := NewPreferenceExtractor(hf, logger.NewTestLogger(t))

	prefs, err := extractor.ExtractPreferences(context.Background(), tripText)

	require.NoError(t, err)
	assert.Equal(t, "Rome", prefs.Destination)
	assert.Equal(t, "5 days", prefs.Duration)
	assert.Equal(t, 2, prefs.Travelers)
	assert.Equal(t, []string{"hiking", "museums", "food"}, prefs.Interests)
	assert.Equal(t, "moderate", prefs.Budget)
	assert.Equal(t, "relaxed", prefs.Pace)
	assert.Equal(t, "wheelchair access", prefs.SpecialRequirements)
	hf.AssertNumberOfCalls(t, "AnswerQuestion", len(PreferenceQuestions))
}

func TestPreferenceExtractor_EmptyAnswersUseDefaults(t *testing.T) {
	hf := &MockHuggingFaceAPI{}
	answerAll(hf, tripText, nil)
	extractor := NewPreferenceExtractor(hf, logger.NewNoOpLogger())

	prefs, err := extractor.ExtractPreferences(context.Background(), tripText)

	require.NoError(t, err)
	assert.Equal(t, "", prefs.Destination)
	assert.Equal(t, 1, prefs.Travelers)
	assert.NotNil(t, prefs.Interests)
	assert.Empty(t, prefs.Interests)
	assert.Equal(t, tripText, prefs.SpecialRequirements)
}

func TestPreferenceExtractor_NonListAnswerIsPlaceholder(t *testing.T) {
	hf := &MockHuggingFaceAPI{}
	for _, q := range PreferenceQuestions {
		hf.On("AnswerQuestion", mock.Anything, q.Question, tripText).Return(`{"answer": "Rome", "score": 0.9}`, nil)
	}
	extractor := NewPreferenceExtractor(hf, logger.NewNoOpLogger())

	prefs, err := extractor.ExtractPreferences(context.Background(), tripText)

	require.NoError(t, err)
	assert.Equal(t, "", prefs.Destination)
	assert.Equal(t, tripText, prefs.SpecialRequirements)
}

func TestPreferenceExtractor_OneFailedQuestionIsDefaulted(t *testing.T) {
	hf := &MockHuggingFaceAPI{}
	for _, q := range PreferenceQuestions {
		switch q.Field {
		case FieldTravelers:
			hf.On("AnswerQuestion", mock.Anything, q.Question, tripText).
				Return(nil, apperrors.Upstream("huggingface", errors.New("503")))
		case FieldDestination:
			hf.On("AnswerQuestion", mock.Anything, q.Question, tripText).Return(`[{"answer": "Rome", "score": 0.9}]`, nil)
		default:
			hf.On("AnswerQuestion", mock.Anything, q.Question, tripText).Return(`[]`, nil)
		}
	}
	extractor := NewPreferenceExtractor(hf, logger.NewNoOpLogger())

	prefs, err := extractor.ExtractPreferences(context.Background(), tripText)

	require.NoError(t, err)
	assert.Equal(t, "Rome", prefs.Destination)
	assert.Equal(t, 1, prefs.Travelers)
}

func TestPreferenceExtractor_AllQuestionsFailed(t *testing.T) {
	hf := &MockHuggingFaceAPI{}
	hf.On("AnswerQuestion", mock.Anything, mock.Anything, tripText).Return(nil, errors.New("connection refused"))
	extractor := NewPreferenceExtractor(hf, logger.NewNoOpLogger())

	_, err := extractor.ExtractPreferences(context.Background(), tripText)

	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}

func TestParseTravelers(t *testing.T) {
	tests := []struct {
		answer string
		want   int
	}{
		{"2 people", 2},
		{"4", 4},
		{"a family of 3", 3},
		{"two", 1},
		{"", 1},
		{"0", 1},
		{"-5", 5},
		{"99999999999999999999999", 1},
	}
	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			assert.Equal(t, tt.want, parseTravelers(tt.answer))
		})
	}
}

func TestSplitInterests(t *testing.T) {
	assert.Equal(t, []string{"hiking", "museums", "food"}, splitInterests("hiking, museums, , food"))
	assert.Equal(t, []string{"food", "food"}, splitInterests("food,food"))
	assert.Equal(t, []string{}, splitInterests(""))
	assert.Equal(t, []string{}, splitInterests(" , ,"))
}

func TestPreferenceQuestions_Order(t *testing.T) {
	fields := make([]PreferenceField, 0, len(PreferenceQuestions))
	for _, q := range PreferenceQuestions {
		fields = append(fields, q.Field)
	}
	assert.Equal(t, []PreferenceField{
		FieldDestination, FieldDuration, FieldTravelers, FieldInterests,
		FieldBudget, FieldPace, FieldSpecialRequirements,
	}, fields)
}

func TestPreferenceExtractor_ExpiredContextFails(t *testing.T) {
	hf := &MockHuggingFaceAPI{}
	hf.On("AnswerQuestion", mock.Anything, mock.Anything, tripText).Return(`[{"answer": "Rome", "score": 0.9}]`, nil)
	extractor := NewPreferenceExtractor(hf, logger.NewNoOpLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := extractor.ExtractPreferences(ctx, tripText)

	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}
