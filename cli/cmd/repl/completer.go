package repl

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/pcomb/json"
	"github.com/ardnew/pcomb/query"
)

// ctrlCommands are the available control-mode commands.
var ctrlCommands = []string{"help", "keys", "edit", "reload", "clear", "quit"}

// isWordBoundary reports whether r delimits words for completion: whitespace,
// the member-access dot, and expr-lang operators and punctuation.
func isWordBoundary(r rune) bool {
	switch r {
	case '.', ' ', '\t',
		'(', ')', '[', ']', '{', '}',
		'+', '-', '*', '/', '%', '^',
		'<', '>', '=', '!',
		'&', '|', ',', '?', ':', ';',
		'"', '\'', '`':
		return true
	}

	return false
}

// wordBounds returns the word at cursor and its byte boundaries within
// input. The word is empty when the cursor sits on a boundary.
func wordBounds(input string, cursor int) (word string, start, end int) {
	cursor = min(cursor, len(input))

	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// parentPath returns the member-access chain leading up to the word at
// wordStart. For input "x + doc.server.ho" with the word "ho", the parent
// path is "doc.server". Returns "" for top-level words.
func parentPath(input string, wordStart int) string {
	prefix := input[:wordStart]
	if !strings.HasSuffix(prefix, ".") {
		return ""
	}

	prefix = strings.TrimRight(prefix, ".")

	end := len(prefix)
	pos := end

	for pos > 0 {
		r, size := utf8.DecodeLastRuneInString(prefix[:pos])
		if r != '.' && isWordBoundary(r) {
			break
		}

		pos -= size
	}

	return strings.TrimSpace(prefix[pos:end])
}

// childCandidates returns the completions for a word under parent. The top
// level offers the environment's variables and the expr builtins; below
// [query.DocName] it offers the keys of the addressed object.
func childCandidates(env query.Env, parent string) []string {
	if parent == "" {
		return query.Names(env)
	}

	head, rest, _ := strings.Cut(parent, ".")

	root, ok := env[head]
	if !ok {
		return nil
	}

	v, ok := query.Lookup(root, rest)
	if !ok {
		return nil
	}

	return query.Members(v)
}

// computeMatches calculates the fuzzy match results for the word at the
// cursor, ranked best-first. An empty word yields no matches at the top
// level and every child after a dot.
func (m model) computeMatches() (
	matches fuzzy.Matches,
	candidates []string,
	wordStart, wordEnd int,
) {
	input := m.input.Value()

	word, wordStart, wordEnd := wordBounds(input, m.input.Position())

	if m.mode == modeCtrl {
		if word == "" || strings.ContainsRune(input[:wordStart], ' ') {
			return nil, nil, wordStart, wordEnd
		}

		candidates = ctrlCommands
	} else {
		parent := parentPath(input, wordStart)
		candidates = childCandidates(m.env, parent)

		if word == "" {
			if parent == "" || len(candidates) == 0 {
				return nil, nil, wordStart, wordEnd
			}

			matches = make(fuzzy.Matches, len(candidates))
			for i, c := range candidates {
				matches[i] = fuzzy.Match{Str: c, Index: i}
			}

			return matches, candidates, wordStart, wordEnd
		}
	}

	if len(candidates) == 0 {
		return nil, nil, wordStart, wordEnd
	}

	return fuzzy.Find(word, candidates), candidates, wordStart, wordEnd
}

// renderCandidateBar builds the single-line completion bar, ellipsized to
// fit width. The selected candidate (when tabbing) uses the selected style.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		rendered := renderCandidate(match, tabActive && i == suggIdx)

		entryWidth := lipgloss.Width(rendered)
		if i > 0 {
			entryWidth += sepWidth
		}

		if i > 0 && used+entryWidth+ellipsisWidth > width {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth
	}

	return b.String()
}

// renderCandidate renders a candidate with its matched characters
// highlighted. Builtin functions get a "()" suffix that is not inserted on
// completion.
func renderCandidate(match fuzzy.Match, selected bool) string {
	base, highlight := suggestionStyle, matchStyle
	if selected {
		base, highlight = selectedStyle, selectedMatchStyle
	}

	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matched[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		if matched[i] {
			b.WriteString(highlight.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}

	if query.IsBuiltin(match.Str) {
		b.WriteString(base.Render("()"))
	}

	return b.String()
}

const previewWidth = 40

// summary returns a one-line preview of a native document value.
func summary(v any) string {
	switch v := v.(type) {
	case map[string]any:
		return fmt.Sprintf("{ %d members }", len(v))

	case []any:
		return fmt.Sprintf("[ %d elements ]", len(v))
	}

	s := formatValue(v)
	if r := []rune(s); len(r) > previewWidth {
		return string(r[:previewWidth-3]) + "..."
	}

	return s
}

// formatValue renders v as compact JSON, falling back to its Go format for
// values JSON cannot represent.
func formatValue(v any) string {
	data, err := json.FormatJSON(v, 0)
	if err != nil {
		return fmt.Sprint(v)
	}

	return strings.TrimSuffix(string(data), "\n")
}
