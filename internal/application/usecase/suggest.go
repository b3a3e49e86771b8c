package usecase

import "strings"

// maxSuggestDistance caps how far a candidate may be from the query before
// suggesting it does more harm than good.
const maxSuggestDistance = 5

// ClosestName picks the candidate with the smallest edit distance to name,
// case-insensitively. Returns "" when nothing is close enough.
func ClosestName(name string, candidates []string) string {
	query := strings.ToLower(name)
	best := ""
	bestDist := maxSuggestDistance + 1

	for _, c := range candidates {
		d := editDistance(query, strings.ToLower(c))
		if d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}

// editDistance is plain Levenshtein over bytes, two-row rolling buffer.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
