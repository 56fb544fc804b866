package catalog

// Defaults returns the featured items shipped with the page.
func Defaults() []Item {
	return []Item{
		{
			ID:          1,
			Title:       "Duel System",
			Description: "A full-featured dueling system with queueing, arena teleportation, kit management, and win/lose handling.",
			Features: []string{
				"Player matchmaking & queue",
				"Kit assignment and inventory handling",
				"Arena teleport + safe-return to spawn",
				"Save & restore player inventory on match start/finish",
			},
			MediaRef: "/duel-system.gif",
		},
		{
			ID:          2,
			Title:       "Save & Restore Inventory",
			Description: "Reliable inventory snapshot/restore system used by duels and other temporary events.",
			Features: []string{
				"Full equipment + hotbar snapshot",
				"Handles edge cases: empty slots, offhand, armor",
				"Namespaces saves per-player with timestamps",
			},
			MediaRef: "/save-restore.gif",
		},
		{
			ID:          3,
			Title:       "Playtime Rewards",
			Description: "A prestige-based playtime tracking and reward system using SkBee, featuring dynamic scaling rewards and a GUI menu.",
			Features: []string{
				"Tracks player playtime and prestige",
				"Reward GUI with milestones and scaling bonuses",
				"Auto-hourly rewards and key distributions",
				"Prestige system with increasing requirements",
			},
			MediaRef: "/playtime-rewards.gif",
		},
	}
}
