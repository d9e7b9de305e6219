package huggingface

import (
	"context"
	"encoding/json"
	"path/filepath"

	"minute-planner/config"
	"minute-planner/util"
)

// HuggingFaceApiClientMock serves canned inference responses from the resources
// directory. QA answers are keyed by question; unknown questions get an empty list.
type HuggingFaceApiClientMock struct {
	resourcesDir string
}

func NewHuggingFaceApiClientMock(resourcesDir string) *HuggingFaceApiClientMock {
	return &HuggingFaceApiClientMock{resourcesDir: resourcesDir}
}

func (c *HuggingFaceApiClientMock) AnswerQuestion(ctx context.Context, question, text string) (json.RawMessage, error) {
	answers, err := util.ReadRawJSONMap(filepath.Join(c.resourcesDir, config.QA_RESPONSES_RESOURCE))
	if err != nil {
		return nil, err
	}
	if answer, ok := answers[question]; ok {
		return answer, nil
	}
	return json.RawMessage(`[]`), nil
}

func (c *HuggingFaceApiClientMock) ClassifySentiment(ctx context.Context, text string) (json.RawMessage, error) {
	return util.ReadRawJSON(filepath.Join(c.resourcesDir, config.SENTIMENT_RESPONSE_RESOURCE))
}

func (c *HuggingFaceApiClientMock) RecognizeEntities(ctx context.Context, text string) (json.RawMessage, error) {
	return util.ReadRawJSON(filepath.Join(c.resourcesDir, config.NER_RESPONSE_RESOURCE))
}
