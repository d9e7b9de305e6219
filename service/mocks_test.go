package services

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"minute-planner/models"
)

type MockHuggingFaceAPI struct {
	mock.Mock
}

func (m *MockHuggingFaceAPI) AnswerQuestion(ctx context.Context, question, text string) (json.RawMessage, error) {
	args := m.Called(ctx, question, text)
	return rawArg(args, 0), args.Error(1)
}

func (m *MockHuggingFaceAPI) ClassifySentiment(ctx context.Context, text string) (json.RawMessage, error) {
	args := m.Called(ctx, text)
	return rawArg(args, 0), args.Error(1)
}

func (m *MockHuggingFaceAPI) RecognizeEntities(ctx context.Context, text string) (json.RawMessage, error) {
	args := m.Called(ctx, text)
	return rawArg(args, 0), args.Error(1)
}

type MockFoursquareAPI struct {
	mock.Mock
}

func (m *MockFoursquareAPI) SearchPlaces(ctx context.Context, params models.PlaceSearchParams) (json.RawMessage, error) {
	args := m.Called(ctx, params)
	return rawArg(args, 0), args.Error(1)
}

func (m *MockFoursquareAPI) TrendingPlaces(ctx context.Context, ll string, limit int) (json.RawMessage, error) {
	args := m.Called(ctx, ll, limit)
	return rawArg(args, 0), args.Error(1)
}

func (m *MockFoursquareAPI) GeocodeSearch(ctx context.Context, name string) (json.RawMessage, error) {
	args := m.Called(ctx, name)
	return rawArg(args, 0), args.Error(1)
}

func rawArg(args mock.Arguments, i int) json.RawMessage {
	if args.Get(i) == nil {
		return nil
	}
	switch v := args.Get(i).(type) {
	case string:
		return json.RawMessage(v)
	default:
		return v.(json.RawMessage)
	}
}
