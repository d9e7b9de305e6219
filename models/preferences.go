package models

// TripPreferences are the structured preferences extracted from free text.
type TripPreferences struct {
	Destination         string   `json:"destination"`
	Duration            string   `json:"duration"`
	Travelers           int      `json:"travelers"`
	Interests           []string `json:"interests"`
	Budget              string   `json:"budget"`
	Pace                string   `json:"pace"`
	SpecialRequirements string   `json:"special_requirements"`
}

type SentimentResult struct {
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
}

type LocationMention struct {
	Location   string  `json:"location"`
	Confidence float64 `json:"confidence"`
}

// PreferenceAnalysis combines every text annotation of one parse request.
type PreferenceAnalysis struct {
	Preferences  TripPreferences   `json:"preferences"`
	Sentiment    SentimentResult   `json:"sentiment"`
	Locations    []LocationMention `json:"locations"`
	OriginalText string            `json:"original_text"`
}

type ParsePreferencesRequest struct {
	Text string `json:"text" validate:"required"`
}
