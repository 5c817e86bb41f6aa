package config

var defaultColors = map[string]string{
	"sword":      "#C0C0C0",
	"dagger":     "#8FBC8F",
	"spear":      "#CD853F",
	"hammer":     "#8B4513",
	"axe":        "#B22222",
	"scythe":     "#556B2F",
	"bow":        "#DAA520",
	"crossbow":   "#A0522D",
	"shuriken":   "#708090",
	"lance":      "#4682B4",
	"sawblade":   "#A9A9A9",
	"unarmed":    "#F4A460",
	"poison":     "#7FFF00",
	"ice":        "#87CEEB",
	"nature":     "#228B22",
	"spark":      "#FFE333",
	"storm":      "#7744CC",
	"wind":       "#AADDCC",
	"stone":      "#8B7355",
	"ghost":      "#88DDFF",
	"magma":      "#FF6622",
	"shadow":     "#4B0082",
	"metal":      "#B0B8C0",
	"poseidon":   "#1E90FF",
	"zeus":       "#FFD700",
	"apollo":     "#FFA500",
	"hades":      "#2E0854",
	"hephaestus": "#FF4500",
	"anubis":     "#2F2F4F",
	"ra":         "#FFCC00",
	"sekhmet":    "#DC143C",
	"duplicator": "#FF69B4",
}
