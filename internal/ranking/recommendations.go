package ranking

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Dr-Dre420/unlostai/internal/catalog"
)

// Recommendation is a career annotated with its match against a selection.
type Recommendation struct {
	catalog.Career
	MatchScore int      `json:"match_score"`
	Matched    []string `json:"matched_skills,omitempty"`
	Missing    []string `json:"missing_skills,omitempty"`
}

// Stars is the five-star rating shown next to the score.
func (r *Recommendation) Stars() int { return Stars(r.MatchScore) }

// Recommendations is an ordered list of ranked careers.
type Recommendations struct {
	Items []Recommendation `json:"items"`
}

func (r *Recommendations) Len() int {
	return len(r.Items)
}

func (r *Recommendations) FindByID(id string) *Recommendation {
	for i := range r.Items {
		if r.Items[i].ID == id {
			return &r.Items[i]
		}
	}
	return nil
}

func (r *Recommendations) IDs() []string {
	ids := make([]string, 0, len(r.Items))
	for _, item := range r.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

func (r *Recommendations) Titles() []string {
	titles := make([]string, 0, len(r.Items))
	for _, item := range r.Items {
		titles = append(titles, item.Title)
	}
	return titles
}

// Retain keeps the items for which keep returns true, preserving order, and
// returns the ids of the dropped ones.
func (r *Recommendations) Retain(keep func(*Recommendation) bool) []string {
	var dropped []string
	kept := r.Items[:0]
	for i := range r.Items {
		if keep(&r.Items[i]) {
			kept = append(kept, r.Items[i])
			continue
		}
		dropped = append(dropped, r.Items[i].ID)
	}
	r.Items = kept
	return dropped
}

// Exclude removes careers by id, preserving order.
func (r *Recommendations) Exclude(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}

	targets := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		targets[strings.TrimSpace(id)] = struct{}{}
	}

	return r.Retain(func(rec *Recommendation) bool {
		_, excluded := targets[rec.ID]
		return !excluded
	})
}

// Clone returns a deep copy: neither the item list nor the skill and
// location slices of an item are shared with r.
func (r *Recommendations) Clone() *Recommendations {
	items := make([]Recommendation, len(r.Items))
	for i, rec := range r.Items {
		rec.RequiredSkills = cloneStrings(rec.RequiredSkills)
		rec.Metadata.Locations = cloneStrings(rec.Metadata.Locations)
		rec.Matched = cloneStrings(rec.Matched)
		rec.Missing = cloneStrings(rec.Missing)
		items[i] = rec
	}
	return &Recommendations{Items: items}
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// ReportByLocation groups recommendations by the locations they are offered in.
func (r *Recommendations) ReportByLocation() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, rec := range r.Items {
		for _, location := range rec.Metadata.Locations {
			report[location] = append(report[location], map[string]string{
				"title":         rec.Title,
				"match":         fmt.Sprintf("%d%%", rec.MatchScore),
				"salary":        rec.Metadata.SalaryRange,
				"growth":        rec.Metadata.GrowthRate,
				"time_to_entry": rec.Metadata.TimeToEntry,
			})
		}
	}
	return report
}

func (r *Recommendations) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "recommendations_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}
