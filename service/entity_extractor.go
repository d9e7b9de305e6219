package services

import (
	"context"

	"minute-planner/api/huggingface"
	"minute-planner/logger"
	"minute-planner/models"
	"minute-planner/util"
)

const (
	LocationEntityGroup   = "LOC"
	LocationMinConfidence = 0.8
)

type EntityExtractor struct {
	hf  huggingface.HuggingFaceAPI
	log logger.Logger
}

func NewEntityExtractor(hf huggingface.HuggingFaceAPI, log logger.Logger) *EntityExtractor {
	return &EntityExtractor{
		hf:  hf,
		log: log.With(map[string]interface{}{"component": "entity_extractor"}),
	}
}

// ExtractLocations keeps LOC entities scored above LocationMinConfidence, in the
// order the model emitted them.
func (x *EntityExtractor) ExtractLocations(ctx context.Context, text string) ([]models.LocationMention, error) {
	raw, err := x.hf.RecognizeEntities(ctx, text)
	if err != nil {
		return nil, err
	}
	doc, _ := util.DecodeJSON(raw)
	entities, _ := util.ListAt(doc)

	locations := []models.LocationMention{}
	for _, entity := range entities {
		if util.StringOr("", entity, "entity_group") != LocationEntityGroup {
			continue
		}
		score := util.FloatOr(0, entity, "score")
		if score <= LocationMinConfidence {
			continue
		}
		locations = append(locations, models.LocationMention{
			Location:   util.StringOr("", entity, "word"),
			Confidence: score,
		})
	}
	x.log.Debug("Extracted locations", map[string]interface{}{
		"entities":  len(entities),
		"locations": len(locations),
	})
	return locations, nil
}
