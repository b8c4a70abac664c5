// Package query derives sorted and filtered views of the show catalog.
// Every function returns a fresh slice; the input order is never disturbed
// so repeated derivations stay stable.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/yonster100/brainrot/pkg/model"
)

// SortMode selects the ordering for the browse view.
type SortMode int

const (
	SortTopRated SortMode = iota
	SortWorstRated
	SortByName
)

func (m SortMode) String() string {
	switch m {
	case SortTopRated:
		return "Top Rated"
	case SortWorstRated:
		return "Worst Rated"
	case SortByName:
		return "By Name"
	default:
		return "Top Rated"
	}
}

// Next cycles to the following sort mode, wrapping around.
func (m SortMode) Next() SortMode {
	switch m {
	case SortTopRated:
		return SortWorstRated
	case SortWorstRated:
		return SortByName
	default:
		return SortTopRated
	}
}

// SortShows returns a sorted copy of records. The sort is stable: records
// with equal keys keep their original dataset order. Unrated records sort to
// the bottom under both score orderings.
func SortShows(records []model.ShowRecord, mode SortMode) []model.ShowRecord {
	out := make([]model.ShowRecord, len(records))
	copy(out, records)

	switch mode {
	case SortByName:
		c := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].TVShow, out[j].TVShow) < 0
		})
	case SortWorstRated:
		sort.SliceStable(out, func(i, j int) bool {
			// nil sorts as +inf so the unrated sink below every score
			if out[i].Notes == nil {
				return false
			}
			if out[j].Notes == nil {
				return true
			}
			return *out[i].Notes < *out[j].Notes
		})
	default: // SortTopRated
		sort.SliceStable(out, func(i, j int) bool {
			// nil sorts as -inf, again keeping the unrated at the bottom
			if out[i].Notes == nil {
				return false
			}
			if out[j].Notes == nil {
				return true
			}
			return *out[i].Notes > *out[j].Notes
		})
	}
	return out
}

// FilterBySubstring keeps records whose name contains term, case
// insensitively. A blank term applies no filtering.
func FilterBySubstring(records []model.ShowRecord, term string) []model.ShowRecord {
	term = strings.TrimSpace(term)
	if term == "" {
		out := make([]model.ShowRecord, len(records))
		copy(out, records)
		return out
	}
	needle := strings.ToLower(term)
	out := make([]model.ShowRecord, 0, len(records))
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.TVShow), needle) {
			out = append(out, rec)
		}
	}
	return out
}

// LevelAll is the identity level filter.
const LevelAll = "All"

// FilterByLevel keeps records classified exactly at level. LevelAll keeps
// everything, including the unrated.
func FilterByLevel(records []model.ShowRecord, level string) []model.ShowRecord {
	if level == LevelAll {
		out := make([]model.ShowRecord, len(records))
		copy(out, records)
		return out
	}
	out := make([]model.ShowRecord, 0, len(records))
	for i := range records {
		if string(records[i].Level()) == level {
			out = append(out, records[i])
		}
	}
	return out
}

// Filter is the database view's combined filter: substring AND level.
func Filter(records []model.ShowRecord, term, level string) []model.ShowRecord {
	return FilterByLevel(FilterBySubstring(records, term), level)
}

// Suggest returns up to max candidate names containing text, for the search
// widget's dropdown. Blank text suggests nothing.
func Suggest(candidates []string, text string, max int) []string {
	text = strings.TrimSpace(text)
	if text == "" || max <= 0 {
		return nil
	}
	needle := strings.ToLower(text)
	var out []string
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c), needle) {
			out = append(out, c)
			if len(out) == max {
				break
			}
		}
	}
	return out
}
