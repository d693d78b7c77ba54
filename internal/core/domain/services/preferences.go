package services

import (
	"slices"

	"workmarket/internal/core/domain/model/kernel"
)

// PreferredCategoryCount is how many top categories earn the affinity bonus.
const PreferredCategoryCount = 5

// PreferredCategories returns up to n category ids ordered by how often they
// appear in appliedCategoryIDs (one entry per application the executor made),
// most frequent first. Ties are broken by category id ascending.
func PreferredCategories(appliedCategoryIDs []kernel.UUID, n int) []kernel.UUID {
	if n <= 0 || len(appliedCategoryIDs) == 0 {
		return nil
	}

	counts := make(map[kernel.UUID]int, len(appliedCategoryIDs))
	for _, id := range appliedCategoryIDs {
		counts[id]++
	}

	ids := make([]kernel.UUID, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b kernel.UUID) int {
		if counts[a] != counts[b] {
			return counts[b] - counts[a]
		}
		return a.Compare(b)
	})

	if len(ids) > n {
		ids = ids[:n]
	}
	return ids
}
