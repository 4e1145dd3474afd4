package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubRandom struct{}

func (stubRandom) RandomString(length int) string {
	return strings.Repeat("x", length)
}

func TestSlugify(t *testing.T) {
	generator := NewGenerator(stubRandom{})
	cases := map[string]string{
		"Casa Lisboa":            "casa-lisboa",
		"  Café  Ñandú ":         "cafe-nandu",
		"Fish & Chips!!":         "fish-chips",
		"Crème brûlée 2024":      "creme-brulee-2024",
		"---":                    "",
		"Pizza_Napoletana/Forno": "pizza-napoletana-forno",
	}
	for name, expected := range cases {
		assert.Equal(t, expected, generator.Slugify(name), name)
	}
	assert.Equal(t, "", generator.Slugify("東京"))
}

func TestSlugifyLimitsLength(t *testing.T) {
	generator := NewGenerator(stubRandom{})
	slug := generator.Slugify(strings.Repeat("ab ", 100))
	assert.LessOrEqual(t, len(slug), MAX_LEN+1)
	assert.False(t, strings.HasSuffix(slug, "-"))
}

func TestRandomSlug(t *testing.T) {
	assert.Equal(t, "xxxxxx", NewGenerator(stubRandom{}).RandomSlug(6))
}
