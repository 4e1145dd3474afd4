package sanitizer

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var angleBrackets = strings.NewReplacer("<", "", ">", "")

// Strict drops every HTML element and angle bracket from user text.
type Strict struct {
	policy *bluemonday.Policy
}

func NewStrict() *Strict {
	return &Strict{policy: bluemonday.StrictPolicy()}
}

// Sanitize strips markup, trims the text and cuts it to maxLength runes.
// A negative maxLength keeps the whole text.
func (s *Strict) Sanitize(text string, maxLength int) string {
	cleaned := html.UnescapeString(s.policy.Sanitize(text))
	cleaned = strings.TrimSpace(angleBrackets.Replace(cleaned))
	if runes := []rune(cleaned); maxLength >= 0 && len(runes) > maxLength {
		cleaned = strings.TrimSpace(string(runes[:maxLength]))
	}
	return cleaned
}
