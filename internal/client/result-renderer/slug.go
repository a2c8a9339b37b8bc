// internal/client/result-renderer/slug.go
package resultrenderer

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	slugPrefix   = "details-"
	slugFallback = "store"
)

// Slug derives a DOM-safe identifier from a store title.
// Letters and digits are kept (Hangul included), every other run becomes a single '-'.
func Slug(title string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range norm.NFC.String(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		pendingSep = true
	}

	body := b.String()
	if body == "" {
		body = slugFallback
	}
	return slugPrefix + body
}

// slugger hands out unique slugs within one rendered view.
type slugger struct {
	seen map[string]int
}

func newSlugger() *slugger {
	return &slugger{seen: make(map[string]int)}
}

// next returns Slug(title), suffixed -2, -3, ... on repeats.
func (s *slugger) next(title string) string {
	base := Slug(title)
	for {
		s.seen[base]++
		n := s.seen[base]
		if n == 1 {
			return base
		}
		candidate := base + "-" + strconv.Itoa(n)
		// a literal title like "A 2" already produces base-2
		if _, taken := s.seen[candidate]; !taken {
			s.seen[candidate] = 1
			return candidate
		}
	}
}
