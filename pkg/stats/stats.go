// Package stats computes display aggregates over the show catalog. All
// results are derived views; nothing here mutates the dataset.
package stats

import (
	"math"

	"github.com/yonster100/brainrot/pkg/model"
)

// Average returns the arithmetic mean of the values selected by field,
// skipping unrated records entirely (excluded from numerator and
// denominator). The second return is false when no record contributed.
func Average(records []model.ShowRecord, field func(*model.ShowRecord) *float64) (float64, bool) {
	sum := 0.0
	n := 0
	for i := range records {
		v := field(&records[i])
		if v == nil {
			continue
		}
		sum += *v
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// Notes selects the overall score field for Average.
func Notes(s *model.ShowRecord) *float64 { return s.Notes }

// Capture selects the stored cognitive-capture aggregate for Average.
func Capture(s *model.ShowRecord) *float64 { return &s.CognitiveCapture }

// Nutrition selects the stored cognitive-nutrition aggregate for Average.
func Nutrition(s *model.ShowRecord) *float64 { return &s.CognitiveNutrition }

// Round1 rounds to one decimal place, the display precision for every
// average in the app.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Summary is the aggregate card shown under the database view and emitted
// by --robot-stats.
type Summary struct {
	Total        int                 `json:"total"`
	Rated        int                 `json:"rated"`
	MeanNotes    float64             `json:"meanNotes"`
	MeanCapture  float64             `json:"meanCapture"`
	MeanNutrient float64             `json:"meanNutrition"`
	HasMean      bool                `json:"hasMean"`
	Distribution map[model.Label]int `json:"distribution"`
	Best         string              `json:"best,omitempty"`
	Worst        string              `json:"worst,omitempty"`
}

// Summarize computes the aggregate card for the given records, typically the
// database view's current filtered subset. Best and Worst consider rated
// records only.
func Summarize(records []model.ShowRecord) Summary {
	s := Summary{
		Total:        len(records),
		Distribution: make(map[model.Label]int, len(model.Levels)+1),
	}

	var best, worst *model.ShowRecord
	for i := range records {
		rec := &records[i]
		s.Distribution[rec.Level()]++
		if !rec.Rated() {
			continue
		}
		s.Rated++
		if best == nil || *rec.Notes > *best.Notes {
			best = rec
		}
		if worst == nil || *rec.Notes < *worst.Notes {
			worst = rec
		}
	}

	if mean, ok := Average(records, Notes); ok {
		s.MeanNotes = Round1(mean)
		s.HasMean = true
	}
	if mean, ok := Average(records, Capture); ok {
		s.MeanCapture = Round1(mean)
	}
	if mean, ok := Average(records, Nutrition); ok {
		s.MeanNutrient = Round1(mean)
	}
	if best != nil {
		s.Best = best.TVShow
	}
	if worst != nil {
		s.Worst = worst.TVShow
	}
	return s
}
