package reference

import (
	"fmt"
	"regexp"
	"strings"
)

// Level describes one hierarchy depth of a numbering scheme.
type Level struct {
	// Pattern matches the start of the unconsumed remainder. Its first capture
	// group is the level token; without a group the whole match is the token.
	// A leading "^" is optional, patterns are always anchored.
	Pattern string

	// Separator is written before the token by canonical rendering.
	Separator string

	// Suffix is written after the token by canonical rendering.
	Suffix string
}

// Grammar is one numbering scheme.
type Grammar struct {
	// Name identifies the grammar within a document (e.g. "main", "annex").
	Name string

	// Levels are ordered shallowest first.
	Levels []Level

	// Full matches a complete, well-formed reference at any depth.
	Full string

	// Exclusions are literals that may lead a reference (e.g. "Article") but
	// never start a numbered level. They are dropped from tokens.
	Exclusions []string
}

// compiled is a Grammar with its patterns compiled.
type compiled struct {
	Grammar
	levels []*regexp.Regexp
	full   *regexp.Regexp
}

func compile(g Grammar) (*compiled, error) {
	if g.Name == "" {
		return nil, fmt.Errorf("grammar name cannot be empty")
	}
	if len(g.Levels) == 0 {
		return nil, fmt.Errorf("grammar %q has no levels", g.Name)
	}
	if g.Full == "" {
		return nil, fmt.Errorf("grammar %q has no full pattern", g.Name)
	}

	c := &compiled{Grammar: g, levels: make([]*regexp.Regexp, len(g.Levels))}
	for i, level := range g.Levels {
		re, err := regexp.Compile("^(?:" + strings.TrimPrefix(level.Pattern, "^") + ")")
		if err != nil {
			return nil, fmt.Errorf("grammar %q level %d: %w", g.Name, i, err)
		}
		c.levels[i] = re
	}

	full, err := regexp.Compile("^(?:" + strings.TrimSuffix(strings.TrimPrefix(g.Full, "^"), "$") + ")$")
	if err != nil {
		return nil, fmt.Errorf("grammar %q full pattern: %w", g.Name, err)
	}
	c.full = full

	return c, nil
}

// stripExclusion removes a leading excluded literal and the space after it.
func (c *compiled) stripExclusion(s string) string {
	for _, ex := range c.Exclusions {
		if s == ex {
			return ""
		}
		if strings.HasPrefix(s, ex+" ") {
			return s[len(ex)+1:]
		}
	}
	return s
}

// render joins tokens with the level separators.
func (c *compiled) render(tokens []string) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i < len(c.Levels) {
			b.WriteString(c.Levels[i].Separator)
			b.WriteString(tok)
			b.WriteString(c.Levels[i].Suffix)
			continue
		}
		b.WriteString(tok)
	}
	return b.String()
}
