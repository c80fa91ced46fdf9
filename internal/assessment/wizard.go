package assessment

import (
	"errors"
	"fmt"

	"github.com/Dr-Dre420/unlostai/internal/catalog"
)

// Variant selects how a notice is presented.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notice is a short user-visible message produced by wizard actions.
type Notice struct {
	Title       string
	Description string
	Variant     Variant
}

// IsZero reports whether the action produced no notice.
func (n Notice) IsZero() bool { return n.Title == "" && n.Description == "" }

// Wizard drives a store through the ordered skill categories. It gates the
// completion affordance to the last step, which the store itself does not.
type Wizard struct {
	store *Store
}

func NewWizard(s *Store) *Wizard {
	return &Wizard{store: s}
}

func (w *Wizard) Store() *Store { return w.store }

// CurrentCategory is the category shown at the current step.
func (w *Wizard) CurrentCategory() catalog.Category {
	category, _ := w.store.catalog.Category(w.store.CurrentStep())
	return category
}

func (w *Wizard) StepCount() int { return w.store.catalog.CategoryCount() }

func (w *Wizard) CanGoBack() bool { return w.store.CurrentStep() > 0 }

func (w *Wizard) IsLastStep() bool {
	return w.store.CurrentStep() >= w.StepCount()-1
}

// Next advances one step unless already at the last one.
func (w *Wizard) Next() Notice {
	if w.IsLastStep() {
		return Notice{}
	}

	w.store.SetCurrentStep(w.store.CurrentStep() + 1)
	return Notice{
		Title:       "Progress Saved",
		Description: fmt.Sprintf("Moving to %s", w.CurrentCategory().Name),
		Variant:     VariantDefault,
	}
}

// Previous goes back one step unless already at the first one.
func (w *Wizard) Previous() {
	if !w.CanGoBack() {
		return
	}
	w.store.SetCurrentStep(w.store.CurrentStep() - 1)
}

// Finish completes the assessment. An empty selection produces a
// destructive notice and leaves the store incomplete.
func (w *Wizard) Finish() Notice {
	if err := w.store.CompleteAssessment(); err != nil {
		if errors.Is(err, ErrNoSkillsSelected) {
			return Notice{
				Title:       "No Skills Selected",
				Description: "Please select at least one skill before proceeding.",
				Variant:     VariantDestructive,
			}
		}
		return Notice{Title: "Assessment Failed", Description: err.Error(), Variant: VariantDestructive}
	}

	return Notice{
		Title:       "Assessment Complete!",
		Description: "Generating your personalized career recommendations...",
		Variant:     VariantDefault,
	}
}
