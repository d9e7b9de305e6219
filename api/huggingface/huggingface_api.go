package huggingface

import (
	"context"
	"encoding/json"
)

// HuggingFaceAPI is the text-understanding collaborator. Each method performs one
// inference call; the response is returned undecoded because its shape varies by
// model and is interpreted, with defaults, by the caller.
type HuggingFaceAPI interface {
	AnswerQuestion(ctx context.Context, question, context string) (json.RawMessage, error)
	ClassifySentiment(ctx context.Context, text string) (json.RawMessage, error)
	RecognizeEntities(ctx context.Context, text string) (json.RawMessage, error)
}
