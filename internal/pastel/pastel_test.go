package pastel

import (
	"math/rand/v2"
	"regexp"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestGenerate_HundredCallsArePastel(t *testing.T) {
	for i := 0; i < 100; i++ {
		color := Generate()
		require.Regexp(t, hexColorRegex, color)

		c, err := colorful.Hex(color)
		require.NoError(t, err, "color %s should parse", color)

		_, s, l := c.Hsl()
		assert.GreaterOrEqual(t, l, MinLightness-tolerance, "lightness of %s", color)
		assert.LessOrEqual(t, l, MaxLightness+tolerance, "lightness of %s", color)
		assert.GreaterOrEqual(t, s, MinSaturation-tolerance, "saturation of %s", color)
		assert.LessOrEqual(t, s, MaxSaturation+tolerance, "saturation of %s", color)
		assert.True(t, IsPastel(color))
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	a := NewGenerator(rand.New(rand.NewPCG(1, 2)))
	b := NewGenerator(rand.New(rand.NewPCG(1, 2)))

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Generate(), b.Generate())
	}
}

func TestGenerator_HueVaries(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewPCG(7, 7)))
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		seen[g.Generate()] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestIsPastel(t *testing.T) {
	tests := []struct {
		color string
		want  bool
	}{
		{"#000000", false},
		{"#ff0000", false},
		{"#ffffff", false},
		{"not-a-color", false},
		{Generate(), true},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPastel(tt.color))
		})
	}
}
