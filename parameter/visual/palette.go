package visual

// Scene palettes in CSS notation; parsed once by the scene presets
var (
	ConstellationPalette = []string{
		"rgba(0,102,255,0.9)",
		"rgba(0,102,255,0.7)",
		"rgba(255,215,0,0.85)",
		"rgba(255,215,0,0.65)",
		"rgba(100,140,220,0.6)",
	}

	LabPalette = []string{
		"rgba(255,165,0,1)",
		"rgba(255,149,0,0.9)",
		"rgba(255,200,80,0.85)",
		"rgba(255,220,130,0.7)",
		"rgba(255,255,255,0.6)",
	}

	ArenaPalette = []string{
		"rgba(0,212,255,0.8)",
		"rgba(189,0,255,0.7)",
		"rgba(0,170,220,0.5)",
		"rgba(150,0,200,0.5)",
		"rgba(255,255,255,0.6)",
	}

	StarfieldPalette = []string{
		"#ffffff",
	}

	RingPalette = []string{
		"rgba(255,255,255,0.8)",
		"rgba(0,245,160,0.6)",
		"rgba(0,245,160,0.3)",
		"rgba(255,255,255,0.4)",
		"rgba(200,200,200,0.5)",
	}
)

// Connective line colors
const (
	ConstellationLineColor = "rgb(80,120,200)"
	LabLineColor           = "rgb(255,180,60)"
)

// Badge ceremony labels and colors
var (
	CeremonyBadgeLabels = []string{"Next.js", "React", "TypeScript", "Tailwind", "GSAP", "Python", "FastAPI", "Claude"}
	CeremonyBadgeColors = []string{"#ffffff", "#61DAFB", "#3178C6", "#06B6D4", "#88CE02", "#3776AB", "#009688", "#D97757"}
)

// Follower colors
const (
	FollowerColor = "#00F5A0"
)

// Terminal host background
const (
	TermBackground = "#05070d"
)
