package domain

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryGastronomico Category = "gastronomico"
	CategoryCultural     Category = "cultural"
	CategoryEducativo    Category = "educativo"
	CategoryRecreativo   Category = "recreativo"
	CategoryHistorico    Category = "historico"
	CategoryNatural      Category = "natural"
)

// Categories lists every category in the order the interest picker shows them.
var Categories = []Category{
	CategoryGastronomico,
	CategoryCultural,
	CategoryEducativo,
	CategoryRecreativo,
	CategoryHistorico,
	CategoryNatural,
}

var categoryLabels = map[Category]string{
	CategoryGastronomico: "Gastronómico",
	CategoryCultural:     "Cultural",
	CategoryEducativo:    "Educativo",
	CategoryRecreativo:   "Recreativo",
	CategoryHistorico:    "Histórico",
	CategoryNatural:      "Natural",
}

// relatedCategories is the fixed adjacency table used by the dashboard matrix.
var relatedCategories = map[Category][]Category{
	CategoryGastronomico: {CategoryRecreativo},
	CategoryCultural:     {CategoryHistorico, CategoryEducativo},
	CategoryEducativo:    {CategoryCultural, CategoryHistorico},
	CategoryRecreativo:   {CategoryNatural, CategoryGastronomico},
	CategoryHistorico:    {CategoryCultural, CategoryEducativo},
	CategoryNatural:      {CategoryRecreativo},
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the display name, or the raw value for unknown categories.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

func (c Category) Related() []Category {
	return relatedCategories[c]
}

func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", raw)
	}
	return c, nil
}
