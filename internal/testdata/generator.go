// Package testdata builds synthetic catalogs for tests and load checks.
package testdata

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/chille/showcase/internal/catalog"
)

var (
	subjects = []string{"Duel", "Inventory", "Playtime", "Crate", "Auction", "Kit", "Warp", "Quest", "Shop", "Bounty"}
	nouns    = []string{"System", "Rewards", "Manager", "Arena", "Vault", "Tracker", "Menu", "Board"}
	features = []string{
		"Player matchmaking & queue",
		"Persistent YAML storage",
		"Configurable cooldowns",
		"GUI menus",
		"Per-world settings",
		"Leaderboard sign support",
		"Admin reload command",
		"Permission nodes",
	}
)

// Items returns n items with ids 1..n in a reproducible order. Every third
// item has no media so placeholder paths get exercised.
func Items(n int, seed int64) []catalog.Item {
	rng := rand.New(rand.NewSource(seed))
	out := make([]catalog.Item, 0, n)
	for i := 1; i <= n; i++ {
		title := fmt.Sprintf("%s %s %d", subjects[rng.Intn(len(subjects))], nouns[rng.Intn(len(nouns))], i)
		it := catalog.Item{
			ID:          catalog.ID(i),
			Title:       title,
			Description: "Generated plugin " + uuid.NewSHA1(uuid.NameSpaceOID, []byte(title)).String()[:8],
		}
		for _, j := range rng.Perm(len(features))[:1+rng.Intn(4)] {
			it.Features = append(it.Features, features[j])
		}
		if i%3 != 0 {
			it.MediaRef = fmt.Sprintf("/media/item-%d.gif", i)
		}
		out = append(out, it)
	}
	return out
}

// Catalog wraps Items in a catalog.
func Catalog(n int, seed int64) *catalog.Catalog {
	return catalog.MustNew(Items(n, seed)...)
}

// Bundle returns a bundle carrying n generated items and the default site.
func Bundle(n int, seed int64) catalog.Bundle {
	return catalog.Bundle{Site: catalog.DefaultSite(), Items: Items(n, seed)}
}
