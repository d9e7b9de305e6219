package services

import (
	"context"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"minute-planner/apperrors"
	"minute-planner/logger"
	"minute-planner/models"
)

// TripAnalysisService combines the text annotators into one preference analysis and
// builds itineraries.
type TripAnalysisService struct {
	preferences *PreferenceExtractor
	sentiment   *SentimentAnnotator
	entities    *EntityExtractor
	log         logger.Logger
}

func NewTripAnalysisService(
	preferences *PreferenceExtractor,
	sentiment *SentimentAnnotator,
	entities *EntityExtractor,
	log logger.Logger,
) *TripAnalysisService {
	return &TripAnalysisService{
		preferences: preferences,
		sentiment:   sentiment,
		entities:    entities,
		log:         log.With(map[string]interface{}{"component": "trip_analysis_service"}),
	}
}

// AnalyzePreferences runs preference extraction, sentiment and location extraction
// concurrently. The first failure cancels the others and fails the whole analysis.
func (s *TripAnalysisService) AnalyzePreferences(ctx context.Context, text string) (*models.PreferenceAnalysis, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.MissingField("text")
	}

	ctx, span := otel.Tracer("TripAnalysisService").Start(ctx, "AnalyzePreferences", trace.WithAttributes(
		attribute.Int("text.length", len(text)),
	))
	defer span.End()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		analysis = models.PreferenceAnalysis{OriginalText: text}
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	wg.Add(3)
	go func() {
		defer wg.Done()
		prefs, err := s.preferences.ExtractPreferences(ctx, text)
		if err != nil {
			fail(err)
			return
		}
		analysis.Preferences = prefs
	}()
	go func() {
		defer wg.Done()
		sentiment, err := s.sentiment.AnalyzeSentiment(ctx, text)
		if err != nil {
			fail(err)
			return
		}
		analysis.Sentiment = sentiment
	}()
	go func() {
		defer wg.Done()
		locations, err := s.entities.ExtractLocations(ctx, text)
		if err != nil {
			fail(err)
			return
		}
		analysis.Locations = locations
	}()
	wg.Wait()

	if firstErr != nil {
		span.RecordError(firstErr)
		span.SetStatus(codes.Error, "Preference analysis failed")
		s.log.WithError(firstErr).Error("Preference analysis failed", nil)
		return nil, firstErr
	}

	span.SetAttributes(
		attribute.String("preferences.destination", analysis.Preferences.Destination),
		attribute.Int("locations.count", len(analysis.Locations)),
	)
	span.SetStatus(codes.Ok, "Preference analysis completed")
	return &analysis, nil
}

// BuildItinerary schedules places in the given order.
func (s *TripAnalysisService) BuildItinerary(ctx context.Context, places []models.PlaceRef) models.Itinerary {
	_, span := otel.Tracer("TripAnalysisService").Start(ctx, "BuildItinerary", trace.WithAttributes(
		attribute.Int("places.count", len(places)),
	))
	defer span.End()
	return BuildItinerary(places)
}
