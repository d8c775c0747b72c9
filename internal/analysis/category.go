// Package analysis computes pass/fail verdicts for the six strategic
// validation categories of the Veld Framework benchmarks.
package analysis

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category identifies one strategic validation dimension.
type Category string

const (
	Scalability   Category = "scalability"
	Contention    Category = "contention"
	Memory        Category = "memory"
	HashCollision Category = "hash_collision"
	Efficiency    Category = "efficiency"
	LoadFactor    Category = "load_factor"
)

// Categories lists all categories in report order. Every walk over
// verdicts uses this order.
var Categories = []Category{
	Scalability,
	Contention,
	Memory,
	HashCollision,
	Efficiency,
	LoadFactor,
}

var titleCaser = cases.Title(language.English)

// Title returns the human-readable heading for a category,
// e.g. "Hash Collision" for hash_collision.
func (c Category) Title() string {
	return titleCaser.String(strings.ReplaceAll(string(c), "_", " "))
}
