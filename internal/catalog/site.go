package catalog

// Site is the static page chrome around the catalog. It is display data only.
type Site struct {
	Name    string  `json:"name" msgpack:"name"`
	Heading string  `json:"heading" msgpack:"heading"`
	Tagline string  `json:"tagline" msgpack:"tagline"`
	Intro   string  `json:"intro" msgpack:"intro"`
	Skills  []Skill `json:"skills,omitempty" msgpack:"skills,omitempty"`
	Contact Contact `json:"contact" msgpack:"contact"`
}

type Skill struct {
	Name    string `json:"name" msgpack:"name"`
	Summary string `json:"summary" msgpack:"summary"`
}

type Contact struct {
	Blurb   string `json:"blurb" msgpack:"blurb"`
	Channel string `json:"channel" msgpack:"channel"`
	Handle  string `json:"handle" msgpack:"handle"`
}

// DefaultSite returns the chrome shipped with the page.
func DefaultSite() Site {
	return Site{
		Name:    "Chille Skripts",
		Heading: "Minecraft Skript Developer",
		Tagline: "I build robust Skripts & server systems, made for servers that want stability and fun.",
		Intro: "I design, test, and deliver complicated Skript systems: duel setups, GUI tools, inventory managers and more. " +
			"Everything is designed to be easy to integrate and maintain.",
		Skills: []Skill{
			{Name: "Scripting", Summary: "Skript (Skriptlang), custom GUI creation, event hooking, effect & cooldown systems, inventory serialization."},
			{Name: "Server & Tools", Summary: "Bukkit/Spigot integrations, placeholders, plugin compatibility checks, testing on local and remote servers."},
			{Name: "Testing & Maintenance", Summary: "Edge-case handling, anti-exploit checks, version compatibility notes, and performance-aware code."},
			{Name: "Soft Skills", Summary: "Documentation, responsive support, quick integration notes, modular code patterns."},
		},
		Contact: Contact{
			Blurb:   "Want to hire or test a Skript? Ping me on Discord and I'll share code and setup instructions.",
			Channel: "Discord",
			Handle:  "caden8978",
		},
	}
}
