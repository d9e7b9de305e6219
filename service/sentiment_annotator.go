package services

import (
	"context"

	"minute-planner/api/huggingface"
	"minute-planner/logger"
	"minute-planner/metrics"
	"minute-planner/models"
	"minute-planner/util"
)

const (
	NeutralSentiment  = "NEUTRAL"
	NeutralConfidence = 0.5
)

type SentimentAnnotator struct {
	hf  huggingface.HuggingFaceAPI
	log logger.Logger
}

func NewSentimentAnnotator(hf huggingface.HuggingFaceAPI, log logger.Logger) *SentimentAnnotator {
	return &SentimentAnnotator{
		hf:  hf,
		log: log.With(map[string]interface{}{"component": "sentiment_annotator"}),
	}
}

// AnalyzeSentiment returns the highest scoring label. Call failures propagate; an
// unexpected response shape yields NEUTRAL at 0.5.
func (a *SentimentAnnotator) AnalyzeSentiment(ctx context.Context, text string) (models.SentimentResult, error) {
	raw, err := a.hf.ClassifySentiment(ctx, text)
	if err != nil {
		return models.SentimentResult{}, err
	}
	doc, _ := util.DecodeJSON(raw)
	if result, ok := topSentiment(doc); ok {
		return result, nil
	}
	metrics.ShapeDefaults.WithLabelValues("sentiment_annotator").Inc()
	a.log.Debug("Unexpected sentiment response, using neutral", nil)
	return models.SentimentResult{Sentiment: NeutralSentiment, Confidence: NeutralConfidence}, nil
}

// topSentiment expects [[{label, score}, ...]]. Every entry must carry a string label
// and a numeric score in [0, 1].
func topSentiment(doc interface{}) (models.SentimentResult, bool) {
	ranked, ok := util.ListAt(doc, 0)
	if !ok || len(ranked) == 0 {
		return models.SentimentResult{}, false
	}
	var best models.SentimentResult
	for i, entry := range ranked {
		label, okLabel := util.StringAt(entry, "label")
		score, okScore := util.FloatAt(entry, "score")
		if !okLabel || !okScore || score < 0 || score > 1 {
			return models.SentimentResult{}, false
		}
		if i == 0 || score > best.Confidence {
			best = models.SentimentResult{Sentiment: label, Confidence: score}
		}
	}
	return best, true
}
