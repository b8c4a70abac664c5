package model

import "fmt"

// Label classifies a show's overall brainrot score into a qualitative band.
type Label string

const (
	LabelExcellent    Label = "Excellent"
	LabelGood         Label = "Good"
	LabelNeutral      Label = "Neutral"
	LabelConcerning   Label = "Concerning"
	LabelHighBrainrot Label = "High Brainrot"
	LabelNA           Label = "N/A"
)

// Levels lists the rateable bands in display order, excluding N/A.
var Levels = []Label{
	LabelExcellent,
	LabelGood,
	LabelNeutral,
	LabelConcerning,
	LabelHighBrainrot,
}

func (l Label) IsValid() bool {
	switch l {
	case LabelExcellent, LabelGood, LabelNeutral, LabelConcerning, LabelHighBrainrot, LabelNA:
		return true
	}
	return false
}

// ColorToken returns a stable presentation token for the label. The mapping
// is total over all labels so every score band renders distinctly.
func (l Label) ColorToken() string {
	switch l {
	case LabelExcellent:
		return "green"
	case LabelGood:
		return "cyan"
	case LabelNeutral:
		return "yellow"
	case LabelConcerning:
		return "orange"
	case LabelHighBrainrot:
		return "red"
	default:
		return "gray"
	}
}

// ClassifyLevel maps an overall score to its band. Boundaries are inclusive
// on the lower bound and exclusive on the upper: 15 is Excellent, 5 is Good,
// 0 is Neutral, -10 is Concerning. A nil score is unrated and maps to N/A.
func ClassifyLevel(notes *float64) Label {
	if notes == nil {
		return LabelNA
	}
	s := *notes
	switch {
	case s >= 15:
		return LabelExcellent
	case s >= 5:
		return LabelGood
	case s >= 0:
		return LabelNeutral
	case s >= -10:
		return LabelConcerning
	default:
		return LabelHighBrainrot
	}
}

// ShowRecord is one entry in the catalog. The dataset is read-only after
// load; every derived view copies rather than mutates.
type ShowRecord struct {
	ID     string `json:"id"`
	TVShow string `json:"tvShow"`
	Image  string `json:"image,omitempty"`

	// Cognitive capture factors (0-10 each; higher = worse for the viewer)
	SensoryHijack    float64 `json:"sensoryHijack"`
	TimeSink         float64 `json:"timeSink"`
	AdPressure       float64 `json:"adPressure"`
	FrictionToIntent float64 `json:"frictionToIntent"`

	// Cognitive nutrition factors (0-10 each; higher = better)
	EducationalValue float64 `json:"educationalValue"`
	Quality          float64 `json:"quality"`
	MoralLesson      float64 `json:"moralLesson"`
	Theme            float64 `json:"theme"`

	// Stored aggregates of the two factor groups (0-40 each)
	CognitiveCapture   float64 `json:"cognitiveCaptureNegative"`
	CognitiveNutrition float64 `json:"cognitiveNutrition"`

	// Notes is the overall score, nutrition minus capture. Nil means the
	// show is unrated; consumers must render N/A, never zero.
	Notes *float64 `json:"notes"`
}

// Level returns the classification band for the record's overall score.
func (s *ShowRecord) Level() Label {
	return ClassifyLevel(s.Notes)
}

// Rated reports whether the record carries an overall score.
func (s *ShowRecord) Rated() bool {
	return s.Notes != nil
}

// Validate checks per-record invariants. Dataset-wide invariants (ID and
// name uniqueness) are checked by the loader.
func (s *ShowRecord) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("show %q: missing id", s.TVShow)
	}
	if s.TVShow == "" {
		return fmt.Errorf("show %s: missing tvShow name", s.ID)
	}
	factors := []struct {
		name  string
		value float64
	}{
		{"sensoryHijack", s.SensoryHijack},
		{"timeSink", s.TimeSink},
		{"adPressure", s.AdPressure},
		{"frictionToIntent", s.FrictionToIntent},
		{"educationalValue", s.EducationalValue},
		{"quality", s.Quality},
		{"moralLesson", s.MoralLesson},
		{"theme", s.Theme},
	}
	for _, f := range factors {
		if f.value < 0 || f.value > 10 {
			return fmt.Errorf("show %s: %s %.1f out of range [0,10]", s.ID, f.name, f.value)
		}
	}
	if s.Notes != nil && (*s.Notes < -40 || *s.Notes > 40) {
		return fmt.Errorf("show %s: notes %.1f out of range [-40,40]", s.ID, *s.Notes)
	}
	return nil
}

// Metric is a named accessor over one of the eight sub-scores. Compare and
// stats views iterate Metrics rather than reflecting over fields.
type Metric struct {
	Name    string
	Capture bool // true for the four capture factors
	Value   func(*ShowRecord) float64
}

// Metrics lists the eight sub-scores in display order: capture factors
// first, then nutrition factors.
var Metrics = []Metric{
	{"Sensory Hijack", true, func(s *ShowRecord) float64 { return s.SensoryHijack }},
	{"Time Sink", true, func(s *ShowRecord) float64 { return s.TimeSink }},
	{"Ad Pressure", true, func(s *ShowRecord) float64 { return s.AdPressure }},
	{"Friction to Intent", true, func(s *ShowRecord) float64 { return s.FrictionToIntent }},
	{"Educational Value", false, func(s *ShowRecord) float64 { return s.EducationalValue }},
	{"Quality", false, func(s *ShowRecord) float64 { return s.Quality }},
	{"Moral Lesson", false, func(s *ShowRecord) float64 { return s.MoralLesson }},
	{"Theme", false, func(s *ShowRecord) float64 { return s.Theme }},
}

// Outcome is the result of a head-to-head comparison on one value.
type Outcome int

const (
	OutcomeTie Outcome = iota
	OutcomeLeft
	OutcomeRight
)

// CompareMetric scores one metric row between two shows. Every metric is
// compared higher-wins, capture factors included.
func CompareMetric(m Metric, left, right *ShowRecord) Outcome {
	lv, rv := m.Value(left), m.Value(right)
	switch {
	case lv > rv:
		return OutcomeLeft
	case rv > lv:
		return OutcomeRight
	default:
		return OutcomeTie
	}
}

// CompareOverall decides the summary winner by overall score. An unrated
// show never wins; two unrated shows tie.
func CompareOverall(left, right *ShowRecord) Outcome {
	switch {
	case left.Notes == nil && right.Notes == nil:
		return OutcomeTie
	case left.Notes == nil:
		return OutcomeRight
	case right.Notes == nil:
		return OutcomeLeft
	case *left.Notes > *right.Notes:
		return OutcomeLeft
	case *right.Notes > *left.Notes:
		return OutcomeRight
	default:
		return OutcomeTie
	}
}
