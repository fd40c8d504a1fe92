package search

import (
	"strings"

	"github.com/anilreddy12001/portfolio-engine/core"
)

// Field weights for the additive scorer. A record accumulates the weight of
// every field the normalized query matches as a substring, plus the catch-all
// bonus when the space-joined concatenation of all fields matches.
const (
	weightTitle        = 10
	weightCompany      = 8
	weightPosition     = 6
	weightName         = 6
	weightRole         = 6
	weightExperience   = 6 // description of an experience signals work relevance
	weightDescription  = 5
	weightCategory     = 4
	weightLocation     = 4
	weightTags         = 3
	weightTechnologies = 3
	weightAvailability = 2
	weightCatchAll     = 1
)

// fieldWeight resolves the score contribution of one matched field.
// Experience descriptions outweigh generic descriptions.
func fieldWeight(kind core.RecordKind, field string) int {
	switch field {
	case core.FieldTitle:
		return weightTitle
	case core.FieldDescription:
		if kind == core.KindExperience {
			return weightExperience
		}
		return weightDescription
	case core.FieldTags:
		return weightTags
	case core.FieldTechnologies:
		return weightTechnologies
	case core.FieldCompany:
		return weightCompany
	case core.FieldPosition:
		return weightPosition
	case core.FieldName:
		return weightName
	case core.FieldRole:
		return weightRole
	case core.FieldCategory:
		return weightCategory
	case core.FieldLocation:
		return weightLocation
	case core.FieldAvailability:
		return weightAvailability
	default:
		return 0
	}
}

// Score computes the relevance of a record for a query. The query must
// already be normalized with Normalize and must not be empty; callers are
// responsible for short-circuiting empty queries before scoring.
//
// The score is the unweighted sum of every matched-field bonus. Zero means
// the record does not match and must be excluded from results. Identical
// inputs always produce identical scores.
func Score(record core.Record, normalizedQuery string) int {
	fields := record.SearchFields()

	score := 0
	for _, f := range fields {
		if anyContains(f.Values, normalizedQuery) {
			score += fieldWeight(record.Kind(), f.Name)
		}
	}
	if strings.Contains(concatenated(fields), normalizedQuery) {
		score += weightCatchAll
	}
	return score
}
