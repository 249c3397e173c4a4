package resolve

import (
	"regexp"
	"strings"
)

// maxPatterns bounds the compiled-pattern cache. When full, the whole
// cache is cleared before the next insert.
const maxPatterns = 20

// patternCache holds compiled wildcard patterns keyed by the raw
// pattern string.
type patternCache struct {
	capacity int
	compiled map[string]*regexp.Regexp
}

func newPatternCache(capacity int) *patternCache {
	return &patternCache{
		capacity: capacity,
		compiled: make(map[string]*regexp.Regexp, capacity),
	}
}

// match reports whether key matches the wildcard pattern pat, compiling
// and caching the pattern on first use.
func (c *patternCache) match(key, pat string) bool {
	re, ok := c.compiled[pat]
	if !ok {
		re = regexp.MustCompile(translate(pat))
		if len(c.compiled) >= c.capacity {
			clear(c.compiled)
		}
		c.compiled[pat] = re
	}
	return re.MatchString(key)
}

// translate converts a wildcard pattern to an anchored regular
// expression: `*` matches any run of characters, `?` exactly one, and
// everything else literally. The pattern must match the whole key.
func translate(pat string) string {
	var b strings.Builder
	b.WriteString(`\A(?s:`)
	for _, r := range pat {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString(`)\z`)
	return b.String()
}
