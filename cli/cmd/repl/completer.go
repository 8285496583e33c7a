package repl

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// dollarKeyPattern matches an in-progress `"$": "name` value, the context in
// which the REPL offers bound-name completion.
var dollarKeyPattern = regexp.MustCompile(`"\$"\s*:\s*"([^"]*)$`)

// completionContext reports whether cursor sits inside a `"$": "..."` value
// and, if so, the partial name typed so far and its byte offset in input.
func completionContext(input string, cursor int) (prefix string, start int, ok bool) {
	if cursor > len(input) {
		cursor = len(input)
	}

	head := input[:cursor]

	loc := dollarKeyPattern.FindStringSubmatchIndex(head)
	if loc == nil {
		return "", 0, false
	}

	return head[loc[2]:loc[3]], loc[2], true
}

// fuzzy.Source implementation over a plain name list.
type nameSource []string

func (s nameSource) String(i int) string { return s[i] }
func (s nameSource) Len() int            { return len(s) }

// completer ranks candidate bound names against a typed prefix.
type completer struct {
	names []string
}

func newCompleter(names []string) *completer {
	return &completer{names: names}
}

// matches returns fuzzy matches for prefix, best first. An empty prefix
// returns every candidate in its original order.
func (c *completer) matches(prefix string) fuzzy.Matches {
	if prefix == "" {
		matches := make(fuzzy.Matches, len(c.names))
		for i, n := range c.names {
			matches[i] = fuzzy.Match{Str: n, Index: i}
		}

		return matches
	}

	return fuzzy.FindFrom(prefix, nameSource(c.names))
}

// renderSuggestions formats the candidate list for the REPL's suggestion
// line, highlighting the matched rune positions and the selected entry.
func renderSuggestions(matches fuzzy.Matches, selected int) string {
	if len(matches) == 0 {
		return hintStyle.Render("(no matches)")
	}

	parts := make([]string, 0, len(matches))

	for i, m := range matches {
		rendered := highlightMatch(m)
		if i == selected {
			rendered = selectedStyle.Render(m.Str)
		}

		parts = append(parts, rendered)
	}

	return strings.Join(parts, "  ")
}

func highlightMatch(m fuzzy.Match) string {
	if len(m.MatchedIndexes) == 0 {
		return suggestionStyle.Render(m.Str)
	}

	matched := make(map[int]bool, len(m.MatchedIndexes))
	for _, idx := range m.MatchedIndexes {
		matched[idx] = true
	}

	var b strings.Builder

	for i, r := range m.Str {
		if matched[i] {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true).Render(string(r)))
		} else {
			b.WriteString(suggestionStyle.Render(string(r)))
		}
	}

	return b.String()
}
