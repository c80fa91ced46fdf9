// Package assessment holds the state of one skills assessment session: the
// selected skill set, the wizard step and the completion flag.
package assessment

import (
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Dr-Dre420/unlostai/internal/catalog"
	"github.com/Dr-Dre420/unlostai/internal/logger"
	"github.com/Dr-Dre420/unlostai/internal/utils"
)

// ErrNoSkillsSelected is returned when completion is requested with an empty selection.
var ErrNoSkillsSelected = errors.New("no skills selected")

// Snapshot is a copy of the store state at one point in time.
type Snapshot struct {
	SessionID      string   `json:"session_id"`
	SelectedSkills []string `json:"selected_skills"`
	CurrentStep    int      `json:"current_step"`
	Complete       bool     `json:"complete"`
}

// Store is the assessment state container. It has a single writer and is not
// safe for concurrent use.
type Store struct {
	catalog   *catalog.Catalog
	logger    *zap.Logger
	sessionID string

	selected map[string]struct{}
	step     int
	complete bool
}

// New creates a store at the initial state: empty selection, step 0, incomplete.
func New(c *catalog.Catalog, log *zap.Logger) *Store {
	id := uuid.NewString()
	return &Store{
		catalog:   c,
		logger:    logger.WithSession(log, id),
		sessionID: id,
		selected:  make(map[string]struct{}),
	}
}

func (s *Store) SessionID() string { return s.sessionID }

// Catalog returns the skill catalog the store was created with.
func (s *Store) Catalog() *catalog.Catalog { return s.catalog }

// ToggleSkill flips membership of id in the selection. Blank ids are ignored.
func (s *Store) ToggleSkill(id string) {
	id = strings.TrimSpace(id)
	if id == "" {
		s.logger.Debug("ignoring blank skill id")
		return
	}

	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
		s.logger.Debug("skill deselected", zap.String("skill_id", id), zap.Int("selected", len(s.selected)))
		return
	}

	if _, known := s.catalog.FindSkill(id); !known {
		s.logger.Debug("selecting skill outside of the catalog", zap.String("skill_id", id))
	}

	s.selected[id] = struct{}{}
	s.logger.Debug("skill selected", zap.String("skill_id", id), zap.Int("selected", len(s.selected)))
}

// SetCurrentStep moves the wizard to step, clamped to the category range.
func (s *Store) SetCurrentStep(step int) {
	last := s.catalog.CategoryCount() - 1
	if last < 0 {
		last = 0
	}

	clamped := step
	if clamped < 0 {
		clamped = 0
	}
	if clamped > last {
		clamped = last
	}

	if clamped != step {
		s.logger.Warn("wizard step out of range, clamping",
			zap.Int("requested_step", step),
			zap.Int("step", clamped),
		)
	}

	s.step = clamped
}

// CompleteAssessment marks the assessment complete. It is idempotent and
// leaves the flag untouched when nothing is selected.
func (s *Store) CompleteAssessment() error {
	if len(s.selected) == 0 {
		s.logger.Info("assessment completion rejected", zap.String("reason", ErrNoSkillsSelected.Error()))
		return ErrNoSkillsSelected
	}

	if !s.complete {
		s.logger.Info("assessment complete", zap.Int("selected", len(s.selected)))
	}
	s.complete = true
	return nil
}

// ResetAssessment restores the initial state, keeping the session id.
func (s *Store) ResetAssessment() {
	s.selected = make(map[string]struct{})
	s.step = 0
	s.complete = false
	s.logger.Info("assessment reset")
}

// SkillsByCategory returns the selected skill ids that belong to category in
// the catalog, sorted. Ids unknown to the catalog belong to no category.
func (s *Store) SkillsByCategory(category catalog.Kind) []string {
	ids := make([]string, 0, len(s.selected))
	for id := range s.selected {
		if kind, ok := s.catalog.CategoryOf(id); ok && kind == category {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Selected returns the selected skill ids in sorted order.
func (s *Store) Selected() []string {
	ids := make([]string, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *Store) IsSelected(id string) bool {
	_, ok := s.selected[id]
	return ok
}

func (s *Store) SelectedCount() int { return len(s.selected) }

func (s *Store) CurrentStep() int { return s.step }

func (s *Store) Complete() bool { return s.complete }

// Progress is the share of catalog skills currently selected, in percent.
// Selections outside of the catalog do not count.
func (s *Store) Progress() int {
	known := 0
	for id := range s.selected {
		if _, ok := s.catalog.FindSkill(id); ok {
			known++
		}
	}
	return utils.Percent(known, s.catalog.TotalSkills())
}

func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		SessionID:      s.sessionID,
		SelectedSkills: s.Selected(),
		CurrentStep:    s.step,
		Complete:       s.complete,
	}
}
