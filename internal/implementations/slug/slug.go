package slug

import (
	"digitalmenu/internal/core/domain/restaurant"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const MAX_LEN = 64

type RandomStringGenerator interface {
	RandomString(length int) string
}

type Generator struct {
	random RandomStringGenerator
}

var _ restaurant.SlugGenerator = (*Generator)(nil)

func NewGenerator(random RandomStringGenerator) *Generator {
	return &Generator{random: random}
}

// Slugify folds accents to ASCII, lowercases the name and joins runs of
// letters and digits with single dashes.
func (g *Generator) Slugify(name string) string {
	folded, _, err := transform.String(
		transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		name,
	)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		default:
			dash = true
		}
		if b.Len() >= MAX_LEN {
			break
		}
	}
	return strings.TrimRight(b.String(), "-")
}

func (g *Generator) RandomSlug(length int) string {
	return g.random.RandomString(length)
}
