// Package catalog holds the static skill and career catalogs used by the
// assessment wizard and the match ranker.
package catalog

// Kind is a skill category identifier.
type Kind string

const (
	KindTechnical Kind = "technical"
	KindSoft      Kind = "soft"
)

type Skill struct {
	ID          string `json:"id" mapstructure:"id" validate:"required"`
	Name        string `json:"name" mapstructure:"name" validate:"required"`
	Category    Kind   `json:"category" mapstructure:"category" validate:"required,oneof=technical soft"`
	Description string `json:"description,omitempty" mapstructure:"description"`
}

// Category is one wizard step worth of skills.
type Category struct {
	ID     Kind    `json:"id" mapstructure:"id" validate:"required,oneof=technical soft"`
	Name   string  `json:"name" mapstructure:"name" validate:"required"`
	Skills []Skill `json:"skills" mapstructure:"skills" validate:"required,min=1,dive"`
}

type Metadata struct {
	SalaryRange string   `json:"salary_range,omitempty" mapstructure:"salary-range"`
	GrowthRate  string   `json:"growth_rate,omitempty" mapstructure:"growth-rate"`
	TimeToEntry string   `json:"time_to_entry,omitempty" mapstructure:"time-to-entry"`
	Locations   []string `json:"locations,omitempty" mapstructure:"locations"`
	Trending    bool     `json:"trending" mapstructure:"trending"`
}

// Career is an immutable career record. RequiredSkills keeps catalog order.
type Career struct {
	ID             string   `json:"id" mapstructure:"id" validate:"required"`
	Title          string   `json:"title" mapstructure:"title" validate:"required"`
	Description    string   `json:"description,omitempty" mapstructure:"description"`
	RequiredSkills []string `json:"required_skills" mapstructure:"required-skills" validate:"dive,required"`
	Metadata       Metadata `json:"metadata" mapstructure:"metadata"`
}

// Catalog is the read-only set of skill categories and careers.
// Callers must not modify the returned slices.
type Catalog struct {
	Categories []Category `json:"categories" mapstructure:"categories" validate:"required,min=1,dive"`
	Careers    []Career   `json:"careers" mapstructure:"careers" validate:"required,min=1,dive"`

	skills map[string]Skill
}

func (c *Catalog) index() {
	c.skills = make(map[string]Skill, c.TotalSkills())
	for _, category := range c.Categories {
		for _, skill := range category.Skills {
			c.skills[skill.ID] = skill
		}
	}
}

// CategoryCount returns the number of wizard steps.
func (c *Catalog) CategoryCount() int {
	return len(c.Categories)
}

// Category returns the category presented at the given wizard step.
func (c *Catalog) Category(step int) (Category, bool) {
	if step < 0 || step >= len(c.Categories) {
		return Category{}, false
	}
	return c.Categories[step], true
}

func (c *Catalog) TotalSkills() int {
	total := 0
	for _, category := range c.Categories {
		total += len(category.Skills)
	}
	return total
}

func (c *Catalog) FindSkill(id string) (Skill, bool) {
	if c.skills == nil {
		c.index()
	}
	skill, ok := c.skills[id]
	return skill, ok
}

// CategoryOf reports which category a skill id belongs to.
func (c *Catalog) CategoryOf(id string) (Kind, bool) {
	skill, ok := c.FindSkill(id)
	if !ok {
		return "", false
	}
	return skill.Category, true
}

func (c *Catalog) FindCareer(id string) *Career {
	for i := range c.Careers {
		if c.Careers[i].ID == id {
			return &c.Careers[i]
		}
	}
	return nil
}

func (c *Catalog) CareerTitles() []string {
	titles := make([]string, 0, len(c.Careers))
	for _, career := range c.Careers {
		titles = append(titles, career.Title)
	}
	return titles
}

// SkillNames maps skill ids to display names, keeping unknown ids as-is.
func (c *Catalog) SkillNames(ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if skill, ok := c.FindSkill(id); ok {
			names = append(names, skill.Name)
			continue
		}
		names = append(names, id)
	}
	return names
}
