package models

import "fmt"

// Rarity is the classifier's guess at how rare a figure is.
type Rarity string

const (
	RarityCommon      Rarity = "Common"
	RarityRare        Rarity = "Rare"
	RaritySecret      Rarity = "Secret"
	RaritySuperSecret Rarity = "Super Secret"
)

// Rarities lists every valid Rarity.
func Rarities() []string {
	return []string{string(RarityCommon), string(RarityRare), string(RaritySecret), string(RaritySuperSecret)}
}

// ParseRarity converts s into a Rarity.
func ParseRarity(s string) (Rarity, error) {
	switch r := Rarity(s); r {
	case RarityCommon, RarityRare, RaritySecret, RaritySuperSecret:
		return r, nil
	default:
		return "", fmt.Errorf("unknown rarity %q", s)
	}
}

// Identification is the result of classifying a photographed figure.
type Identification struct {
	Name        string
	Series      string
	Rarity      Rarity
	Description string
	Confidence  float64 // in [0, 1]
}
