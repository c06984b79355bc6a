package specification

import (
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// ActiveOnly keeps published content.
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = true")
}

// CategoryIs filters content by category.
type CategoryIs struct {
	Category string
}

func (s CategoryIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

// TagsOverlap matches rows whose jsonb tag array shares at least one value
// with the given set. Uses the jsonb_exists_any function form instead of the
// ?| operator, which gorm would read as a placeholder.
type TagsOverlap struct {
	Column string
	Tags   []string
}

func (s TagsOverlap) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Tags) == 0 {
		return db
	}
	return db.Where("jsonb_exists_any("+s.Column+", ?::text[])", pgTextArrayLiteral(s.Tags))
}

// TargetsProfile matches content whose concern tags, goal tags or addressed
// fear intersect the given profile attributes.
type TargetsProfile struct {
	Concerns    []string
	Goals       []string
	PrimaryFear string
}

func (s TargetsProfile) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(
		"jsonb_exists_any(tags, ?::text[]) OR jsonb_exists_any(goal_tags, ?::text[]) OR fear_addressed = ?",
		pgTextArrayLiteral(s.Concerns), pgTextArrayLiteral(s.Goals), s.PrimaryFear,
	)
}

// SeverityMatches keeps content whose severity_levels set contains the score,
// or declares no severity targeting at all.
type SeverityMatches struct {
	Score int
}

func (s SeverityMatches) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(
		"severity_levels @> ?::jsonb OR jsonb_array_length(severity_levels) = 0",
		"["+strconv.Itoa(s.Score)+"]",
	)
}

// pgTextArrayLiteral renders a postgres text[] literal. Tag values come from
// closed vocabularies so plain quoting is enough.
func pgTextArrayLiteral(tags []string) string {
	quoted := make([]string, len(tags))
	for i, t := range tags {
		quoted[i] = `"` + strings.ReplaceAll(t, `"`, ``) + `"`
	}
	return "{" + strings.Join(quoted, ",") + "}"
}
