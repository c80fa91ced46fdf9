package gemini

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/Dr-Dre420/unlostai/internal/advisor"
	"github.com/Dr-Dre420/unlostai/internal/ranking"
	"github.com/Dr-Dre420/unlostai/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const (
	defaultMaxLogLength = 200
	systemInstruction   = "You are a career advisor for students entering the Indian job market. Answer only with the requested JSON."
)

// Planner drafts learning plans through Gemini.
type Planner struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

var _ advisor.Planner = (*Planner)(nil)

func NewPlanner(generator contentGenerator, maxLogLength int, logger *zap.Logger) *Planner {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Planner{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

func (p *Planner) Plan(ctx context.Context, rec *ranking.Recommendation, selected []string) (*advisor.LearningPlan, error) {
	if rec == nil {
		return nil, fmt.Errorf("recommendation is required")
	}

	careerJSON, err := json.MarshalIndent(rec.Career, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal career payload: %w", err)
	}

	prompt := buildPrompt(string(careerJSON), selected, rec.Missing)

	p.logger.Debug("gemini learning plan request",
		zap.String("career_id", rec.ID),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, p.maxLogLen)),
	)

	raw, err := p.generator.GenerateContent(ctx, systemInstruction, prompt)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("gemini learning plan response",
		zap.String("career_id", rec.ID),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, p.maxLogLen)),
	)

	plan, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	plan.CareerID = rec.ID
	plan.Raw = raw
	return plan, nil
}

func buildPrompt(careerJSON string, selected, missing []string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Career:\n{{CAREER_JSON}}\n\nSelected skills: {{SELECTED_SKILLS}}\nMissing skills: {{MISSING_SKILLS}}\n\nJSON Response:"
	}

	prompt := strings.ReplaceAll(template, "{{CAREER_JSON}}", careerJSON)
	prompt = strings.ReplaceAll(prompt, "{{SELECTED_SKILLS}}", listOrNone(selected))
	prompt = strings.ReplaceAll(prompt, "{{MISSING_SKILLS}}", listOrNone(missing))
	return prompt
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

func parseResponse(raw string) (*advisor.LearningPlan, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	plan := &advisor.LearningPlan{
		Summary:  coerceString(data["summary"]),
		Steps:    coerceStrings(data["steps"]),
		Duration: coerceString(data["duration"]),
	}

	if plan.Summary == "" && len(plan.Steps) == 0 {
		return nil, fmt.Errorf("parse gemini response: learning plan is empty")
	}

	return plan, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", val))
	}
}

func coerceStrings(v any) []string {
	switch val := v.(type) {
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s := coerceString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		var out []string
		for _, line := range strings.Split(val, "\n") {
			line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*"))
			if line != "" {
				out = append(out, line)
			}
		}
		return out
	default:
		return nil
	}
}
