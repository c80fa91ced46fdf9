package filtering

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Dr-Dre420/unlostai/internal/ranking"
)

// toggle carries the enable/disable bookkeeping shared by all steps.
type toggle struct {
	disabled bool
	reason   string
}

func (t *toggle) Disable(reason string) {
	t.disabled = true
	t.reason = reason
}

func (t *toggle) IsEnabled() bool { return !t.disabled }

type minimumScoreFilter struct {
	toggle
	minimum int
}

// NewMinimumScore drops recommendations scoring below the configured minimum.
func NewMinimumScore() Filter {
	return &minimumScoreFilter{}
}

func (f *minimumScoreFilter) Name() string { return "minimum_score" }

func (f *minimumScoreFilter) Validate(cfg *Config) error {
	f.minimum = 0
	if cfg == nil {
		return nil
	}
	if cfg.MinimumScore < 0 || cfg.MinimumScore > 100 {
		return fmt.Errorf("minimum score must be within [0, 100], got %d", cfg.MinimumScore)
	}
	f.minimum = cfg.MinimumScore
	return nil
}

func (f *minimumScoreFilter) Apply(_ context.Context, deps Deps, r *ranking.Recommendations) (*ranking.Recommendations, Step, error) {
	initial := r.Len()
	if f.minimum == 0 {
		return r, Step{Initial: initial, Left: initial}, nil
	}

	dropped := r.Retain(func(rec *ranking.Recommendation) bool {
		return rec.MatchScore >= f.minimum
	})
	if len(dropped) > 0 {
		deps.logger().Info("dropping careers below minimum score",
			zap.Int("minimum_score", f.minimum),
			zap.Strings("excluded_careers", dropped),
			zap.Int("careers_left", r.Len()),
		)
	}

	return r, Step{Initial: initial, Dropped: len(dropped), Left: r.Len()}, nil
}

func (f *minimumScoreFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{"minimum_score": strconv.Itoa(f.minimum)},
	}
}

type trendingFilter struct {
	toggle
	only bool
}

// NewTrending keeps only trending careers when requested.
func NewTrending() Filter {
	return &trendingFilter{}
}

func (f *trendingFilter) Name() string { return "trending" }

func (f *trendingFilter) Validate(cfg *Config) error {
	f.only = cfg != nil && cfg.TrendingOnly
	return nil
}

func (f *trendingFilter) Apply(_ context.Context, deps Deps, r *ranking.Recommendations) (*ranking.Recommendations, Step, error) {
	initial := r.Len()
	if !f.only {
		return r, Step{Initial: initial, Left: initial}, nil
	}

	dropped := r.Retain(func(rec *ranking.Recommendation) bool {
		return rec.Metadata.Trending
	})
	if len(dropped) > 0 {
		deps.logger().Info("dropping careers that are not trending",
			zap.Strings("excluded_careers", dropped),
			zap.Int("careers_left", r.Len()),
		)
	}

	return r, Step{Initial: initial, Dropped: len(dropped), Left: r.Len()}, nil
}

func (f *trendingFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{"trending_only": strconv.FormatBool(f.only)},
	}
}

type locationsFilter struct {
	toggle
	locations []string
}

// NewLocations keeps careers offered in at least one configured location.
func NewLocations() Filter {
	return &locationsFilter{}
}

func (f *locationsFilter) Name() string { return "locations" }

func (f *locationsFilter) Validate(cfg *Config) error {
	f.locations = nil
	if cfg == nil {
		return nil
	}
	for _, location := range cfg.Locations {
		if location = strings.TrimSpace(location); location != "" {
			f.locations = append(f.locations, location)
		}
	}
	return nil
}

func (f *locationsFilter) Apply(_ context.Context, deps Deps, r *ranking.Recommendations) (*ranking.Recommendations, Step, error) {
	initial := r.Len()
	if len(f.locations) == 0 {
		return r, Step{Initial: initial, Left: initial}, nil
	}

	dropped := r.Retain(func(rec *ranking.Recommendation) bool {
		for _, offered := range rec.Metadata.Locations {
			for _, wanted := range f.locations {
				if strings.EqualFold(offered, wanted) {
					return true
				}
			}
		}
		return false
	})
	if len(dropped) > 0 {
		deps.logger().Info("dropping careers outside of requested locations",
			zap.Strings("locations", f.locations),
			zap.Strings("excluded_careers", dropped),
			zap.Int("careers_left", r.Len()),
		)
	}

	return r, Step{Initial: initial, Dropped: len(dropped), Left: r.Len()}, nil
}

func (f *locationsFilter) Status() Status {
	details := map[string]string{}
	if len(f.locations) > 0 {
		details["locations"] = strings.Join(f.locations, ",")
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}

type excludeCareersFilter struct {
	toggle
	careers []string
}

// NewExcludeCareers removes careers listed in the configuration.
func NewExcludeCareers() Filter {
	return &excludeCareersFilter{}
}

func (f *excludeCareersFilter) Name() string { return "exclude_careers" }

func (f *excludeCareersFilter) Validate(cfg *Config) error {
	f.careers = nil
	if cfg != nil {
		f.careers = append(f.careers, cfg.ExcludeCareers...)
	}
	return nil
}

func (f *excludeCareersFilter) Apply(_ context.Context, deps Deps, r *ranking.Recommendations) (*ranking.Recommendations, Step, error) {
	initial := r.Len()
	if len(f.careers) == 0 {
		return r, Step{Initial: initial, Left: initial}, nil
	}

	dropped := r.Exclude(f.careers)
	if len(dropped) > 0 {
		deps.logger().Info("excluding careers from config",
			zap.Strings("excluded_careers", dropped),
			zap.Int("careers_left", r.Len()),
		)
	}

	return r, Step{Initial: initial, Dropped: len(dropped), Left: r.Len()}, nil
}

func (f *excludeCareersFilter) Status() Status {
	details := map[string]string{}
	if len(f.careers) > 0 {
		details["careers"] = strings.Join(f.careers, ",")
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
