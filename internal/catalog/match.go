package catalog

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxMatchDistance is the highest normalized edit distance still accepted.
const maxMatchDistance = 0.4

// Match finds the item whose title best matches query. Substring hits win
// over edit distance; ties go to the earlier item.
func (c *Catalog) Match(query string) (Item, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || c.Len() == 0 {
		return Item{}, ErrNoMatch
	}
	best, bestScore := -1, 2.0
	for i, it := range c.items {
		s := matchScore(q, strings.ToLower(it.Title))
		if s < bestScore {
			best, bestScore = i, s
		}
	}
	if best < 0 || bestScore > maxMatchDistance {
		return Item{}, fmt.Errorf("%w: %q", ErrNoMatch, query)
	}
	return c.items[best].clone(), nil
}

func matchScore(q, title string) float64 {
	switch {
	case q == title:
		return 0
	case strings.HasPrefix(title, q):
		return 0.05
	case strings.Contains(title, q):
		return 0.1
	}
	score := normalizedDistance(q, title)
	for _, word := range strings.Fields(title) {
		if s := normalizedDistance(q, word); s < score {
			score = s
		}
	}
	return score
}

func normalizedDistance(a, b string) float64 {
	longest := len([]rune(a))
	if n := len([]rune(b)); n > longest {
		longest = n
	}
	if longest == 0 {
		return 0
	}
	return float64(levenshtein.ComputeDistance(a, b)) / float64(longest)
}
