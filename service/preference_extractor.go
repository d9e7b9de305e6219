package services

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"minute-planner/api/huggingface"
	"minute-planner/apperrors"
	"minute-planner/logger"
	"minute-planner/metrics"
	"minute-planner/models"
	"minute-planner/util"
)

type PreferenceField string

const (
	FieldDestination         PreferenceField = "destination"
	FieldDuration            PreferenceField = "duration"
	FieldTravelers           PreferenceField = "travelers"
	FieldInterests           PreferenceField = "interests"
	FieldBudget              PreferenceField = "budget"
	FieldPace                PreferenceField = "pace"
	FieldSpecialRequirements PreferenceField = "special_requirements"
)

type PreferenceQuestion struct {
	Field    PreferenceField
	Question string
}

// PreferenceQuestions is asked of the QA model, in this order, for every text.
var PreferenceQuestions = []PreferenceQuestion{
	{FieldDestination, "Where does the person want to travel?"},
	{FieldDuration, "How long is the trip?"},
	{FieldTravelers, "How many people are traveling?"},
	{FieldInterests, "What are their interests?"},
	{FieldBudget, "What is their budget?"},
	{FieldPace, "What is their travel pace preference?"},
	{FieldSpecialRequirements, "What are their special requirements?"},
}

// qaAnswer is the top-ranked answer for one question.
type qaAnswer struct {
	Answer string
	Score  float64
}

// PreferenceExtractor turns free text into TripPreferences with one QA call per field.
type PreferenceExtractor struct {
	hf  huggingface.HuggingFaceAPI
	log logger.Logger
}

func NewPreferenceExtractor(hf huggingface.HuggingFaceAPI, log logger.Logger) *PreferenceExtractor {
	return &PreferenceExtractor{
		hf:  hf,
		log: log.With(map[string]interface{}{"component": "preference_extractor"}),
	}
}

// ExtractPreferences asks every question concurrently. A failed question falls back to
// its field default; only when all of them fail, or ctx ends first, is the model
// reported unavailable.
func (e *PreferenceExtractor) ExtractPreferences(ctx context.Context, text string) (models.TripPreferences, error) {
	answers := make([]qaAnswer, len(PreferenceQuestions))
	errs := make([]error, len(PreferenceQuestions))

	var wg sync.WaitGroup
	for i, q := range PreferenceQuestions {
		wg.Add(1)
		go func(i int, q PreferenceQuestion) {
			defer wg.Done()
			answers[i], errs[i] = e.ask(ctx, q, text)
		}(i, q)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return models.TripPreferences{}, apperrors.Upstream("huggingface", err)
	}

	byField := make(map[PreferenceField]string, len(PreferenceQuestions))
	failed := 0
	for i, q := range PreferenceQuestions {
		if errs[i] != nil {
			failed++
			e.log.WithError(errs[i]).Warn("Question failed, using default", map[string]interface{}{
				"field": string(q.Field),
			})
			continue
		}
		byField[q.Field] = answers[i].Answer
	}
	if failed == len(PreferenceQuestions) {
		return models.TripPreferences{}, apperrors.Upstream("huggingface", errs[0])
	}

	return models.TripPreferences{
		Destination:         byField[FieldDestination],
		Duration:            byField[FieldDuration],
		Travelers:           parseTravelers(byField[FieldTravelers]),
		Interests:           splitInterests(byField[FieldInterests]),
		Budget:              byField[FieldBudget],
		Pace:                byField[FieldPace],
		SpecialRequirements: orText(byField[FieldSpecialRequirements], text),
	}, nil
}

// ask returns the empty placeholder when the model answers with anything but a
// non-empty list.
func (e *PreferenceExtractor) ask(ctx context.Context, q PreferenceQuestion, text string) (qaAnswer, error) {
	raw, err := e.hf.AnswerQuestion(ctx, q.Question, text)
	if err != nil {
		return qaAnswer{}, err
	}
	doc, _ := util.DecodeJSON(raw)
	ranked, ok := util.ListAt(doc)
	if !ok || len(ranked) == 0 {
		metrics.ShapeDefaults.WithLabelValues("preference_extractor").Inc()
		return qaAnswer{}, nil
	}
	return qaAnswer{
		Answer: util.StringOr("", ranked[0], "answer"),
		Score:  util.FloatOr(0, ranked[0], "score"),
	}, nil
}

// parseTravelers keeps the ASCII digits of answer; anything that does not yield a
// positive count is 1.
func parseTravelers(answer string) int {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, answer)
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func splitInterests(answer string) []string {
	interests := []string{}
	for _, part := range strings.Split(answer, ",") {
		if s := strings.TrimSpace(part); s != "" {
			interests = append(interests, s)
		}
	}
	return interests
}

func orText(answer, text string) string {
	if strings.TrimFunc(answer, unicode.IsSpace) == "" {
		return text
	}
	return answer
}
