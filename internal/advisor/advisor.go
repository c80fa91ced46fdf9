// Package advisor drafts learning plans for recommended careers. It never
// affects match scores.
package advisor

import (
	"context"

	"github.com/Dr-Dre420/unlostai/internal/ranking"
)

// LearningPlan is a drafted path from the current skills towards a career.
type LearningPlan struct {
	CareerID string   `json:"career_id"`
	Summary  string   `json:"summary"`
	Steps    []string `json:"steps"`
	Duration string   `json:"duration,omitempty"`
	Raw      string   `json:"-"`
}

type Planner interface {
	Plan(ctx context.Context, rec *ranking.Recommendation, selected []string) (*LearningPlan, error)
}
