// Package ranking scores careers against a set of selected skills and
// orders them by match.
package ranking

import (
	"math"
	"sort"
	"strings"

	"github.com/Dr-Dre420/unlostai/internal/catalog"
)

const (
	// DefaultScore is assigned to every career before any skill is selected.
	DefaultScore = 70
	// BaseScore is the floor for careers with requirements but no matches.
	BaseScore = 60
	// MaxScore caps the match score even when every requirement matches.
	MaxScore = 95

	matchSpan = 35
)

// Rank scores every career against the selection and returns them sorted by
// score, highest first. Equal scores keep catalog order. Selected strings are
// trimmed before matching and blank ones are dropped, so a selection of only
// blanks ranks like an empty one.
func Rank(selected []string, careers []catalog.Career) *Recommendations {
	needles := normalize(selected)

	items := make([]Recommendation, 0, len(careers))
	for _, career := range careers {
		rec := Recommendation{Career: career}
		if len(needles) == 0 {
			rec.MatchScore = DefaultScore
			rec.Missing = append([]string(nil), career.RequiredSkills...)
		} else {
			rec.MatchScore, rec.Matched, rec.Missing = score(needles, career.RequiredSkills)
		}
		items = append(items, rec)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].MatchScore > items[j].MatchScore
	})

	return &Recommendations{Items: items}
}

// Score computes the match score of one requirement list. An empty selection
// yields DefaultScore.
func Score(selected []string, required []string) (int, []string, []string) {
	needles := normalize(selected)
	if len(needles) == 0 {
		return DefaultScore, nil, append([]string(nil), required...)
	}
	return score(needles, required)
}

func score(needles []string, required []string) (int, []string, []string) {
	if len(required) == 0 {
		return BaseScore, nil, nil
	}

	var matched, missing []string
	for _, requirement := range required {
		if Matches(needles, requirement) {
			matched = append(matched, requirement)
			continue
		}
		missing = append(missing, requirement)
	}

	ratio := float64(len(matched)) / float64(len(required))
	s := int(math.Round(BaseScore + ratio*matchSpan))
	if s > MaxScore {
		s = MaxScore
	}

	return s, matched, missing
}

// Matches reports whether any needle and the requirement contain one another,
// ignoring case. Needles are expected to be lowercased already.
func Matches(needles []string, requirement string) bool {
	req := strings.ToLower(strings.TrimSpace(requirement))
	if req == "" {
		return false
	}

	for _, needle := range needles {
		if strings.Contains(needle, req) || strings.Contains(req, needle) {
			return true
		}
	}
	return false
}

// Stars converts a match score into a five-star rating.
func Stars(score int) int {
	stars := score / 20
	if stars < 0 {
		return 0
	}
	if stars > 5 {
		return 5
	}
	return stars
}

func normalize(selected []string) []string {
	out := make([]string, 0, len(selected))
	for _, s := range selected {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
