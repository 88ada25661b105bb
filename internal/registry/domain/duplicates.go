package domain

import (
	"cmp"
	"slices"
	"time"

	"github.com/agnivade/levenshtein"
)

const DefaultDuplicateThreshold = 0.85

// birthdateBoost is added to the name score when birthdates match.
const birthdateBoost = 0.1

type DuplicateCandidate struct {
	Resident Resident
	Score    float64
}

// NameSimilarity returns 1 - distance/longest over the normalized display names.
func NameSimilarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	ra, rb := []rune(a), []rune(b)
	longest := max(len(ra), len(rb))
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

// FindDuplicates scores each candidate against subject and keeps those at or
// above threshold, best first.
func FindDuplicates(subject Resident, candidates []Resident, threshold float64) []DuplicateCandidate {
	display := subject.Name.Display()
	matches := make([]DuplicateCandidate, 0)
	for _, candidate := range candidates {
		if candidate.ID == subject.ID {
			continue
		}
		score := NameSimilarity(display, candidate.Name.Display())
		if sameDay(subject.Birthdate, candidate.Birthdate) {
			score = min(score+birthdateBoost, 1)
		}
		if score >= threshold {
			matches = append(matches, DuplicateCandidate{Resident: candidate, Score: score})
		}
	}

	SortDuplicates(matches)
	return matches
}

// SortDuplicates orders candidates by descending score.
func SortDuplicates(matches []DuplicateCandidate) {
	slices.SortStableFunc(matches, func(a, b DuplicateCandidate) int {
		return cmp.Compare(b.Score, a.Score)
	})
}

func sameDay(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
