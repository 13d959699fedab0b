// Package pastel generates light, desaturated colors that keep black text
// legible when used as a background.
package pastel

import (
	"math/rand/v2"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// Saturation and lightness bounds for generated colors
const (
	MinSaturation = 0.25
	MaxSaturation = 0.55
	MinLightness  = 0.80
	MaxLightness  = 0.90
)

// tolerance absorbs rounding to 8-bit channels when a hex string is parsed back
const tolerance = 0.03

// Generator produces pastel colors from a random source
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator creates a generator. A nil source uses the global generator.
func NewGenerator(rnd *rand.Rand) *Generator {
	return &Generator{rnd: rnd}
}

func (g *Generator) float64() float64 {
	if g.rnd == nil {
		return rand.Float64()
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Float64()
}

// Generate returns a pastel color as a CSS hex string (#rrggbb).
// Hue is random on every call.
func (g *Generator) Generate() string {
	h := g.float64() * 360
	s := MinSaturation + g.float64()*(MaxSaturation-MinSaturation)
	l := MinLightness + g.float64()*(MaxLightness-MinLightness)
	return colorful.Hsl(h, s, l).Clamped().Hex()
}

var defaultGenerator = NewGenerator(nil)

// Generate returns a pastel color from the default generator
func Generate() string {
	return defaultGenerator.Generate()
}

// IsPastel reports whether color is a valid hex color inside the pastel
// saturation and lightness bounds.
func IsPastel(color string) bool {
	c, err := colorful.Hex(color)
	if err != nil {
		return false
	}
	_, s, l := c.Hsl()
	return s >= MinSaturation-tolerance && s <= MaxSaturation+tolerance &&
		l >= MinLightness-tolerance && l <= MaxLightness+tolerance
}
