// Package profile holds the fixed catalog of color-vision deficiency profiles.
package profile

import "image/color"

// Matrix is a 3x3 linear transform applied to (r, g, b). Row i produces channel i.
type Matrix [3][3]float64

// Profile describes one simulated deficiency.
type Profile struct {
	ID          string
	Name        string
	Description string
	Matrix      Matrix
}

const (
	Deuteranopia = "deuteranopia"
	Protanopia   = "protanopia"
	Tritanopia   = "tritanopia"
)

var catalog = [...]Profile{
	{
		ID:          Deuteranopia,
		Name:        "Deuteranopia",
		Description: "Green-blind: Most common type. Difficulty distinguishing red and green colors. Green appears gray/brown.",
		Matrix: Matrix{
			{0.625, 0.375, 0},
			{0.7, 0.3, 0},
			{0, 0.3, 0.7},
		},
	},
	{
		ID:          Protanopia,
		Name:        "Protanopia",
		Description: "Red-blind: Red colors appear darker. Difficulty with red-green distinction. Red may look black.",
		Matrix: Matrix{
			{0.567, 0.433, 0},
			{0.558, 0.442, 0},
			{0, 0.242, 0.758},
		},
	},
	{
		ID:          Tritanopia,
		Name:        "Tritanopia",
		Description: "Blue-blind: Very rare. Difficulty distinguishing blue and yellow. Blue appears gray/green.",
		Matrix: Matrix{
			{0.95, 0.05, 0},
			{0, 0.433, 0.567},
			{0, 0.475, 0.525},
		},
	},
}

// All returns a copy of the catalog in display order.
func All() []Profile {
	out := make([]Profile, len(catalog))
	copy(out, catalog[:])
	return out
}

// Default is the profile selected on start.
func Default() Profile { return catalog[0] }

// Lookup finds a profile by id.
func Lookup(id string) (Profile, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}

// Particle accent colors, picked to contrast with what each deficiency loses.
var (
	ParticleNormal       = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ParticleProtanopia   = color.RGBA{G: 0xFF, A: 0xFF}
	ParticleDeuteranopia = color.RGBA{B: 0xFF, A: 0xFF}
	ParticleTritanopia   = color.RGBA{R: 0xFF, A: 0xFF}
)

// ParticleColor returns the overlay color for a profile id; unknown ids get the default white.
func ParticleColor(id string) color.RGBA {
	switch id {
	case Protanopia:
		return ParticleProtanopia
	case Deuteranopia:
		return ParticleDeuteranopia
	case Tritanopia:
		return ParticleTritanopia
	default:
		return ParticleNormal
	}
}
