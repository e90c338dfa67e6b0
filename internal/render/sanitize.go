package render

import (
	"html"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// Clean strips markup and terminal escape sequences from model-provided text.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	s = ansi.Strip(s)
	if strings.ContainsAny(s, "<>&") {
		s = html.UnescapeString(strictPolicy().Sanitize(s))
	}
	return strings.TrimSpace(strings.Map(dropControl, s))
}

func strictPolicy() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

// dropControl removes control characters other than newline and tab.
func dropControl(r rune) rune {
	if r == '\n' || r == '\t' {
		return r
	}
	if r < 0x20 || r == 0x7f {
		return -1
	}
	return r
}
