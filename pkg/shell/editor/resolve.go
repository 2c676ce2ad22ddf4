// ABOUTME: Shared Tab/Enter resolution: walks buffer tokens against the command tree.
// ABOUTME: Splices unique-match completions into the buffer and reports ambiguity or failure.

package editor

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/mauromedda/ger-go/pkg/shell/cmdtree"
	"github.com/mauromedda/ger-go/pkg/shell/match"
)

// resolveStatus classifies the outcome of walking the buffer.
type resolveStatus int

const (
	// resolveOK: every token matched exactly one entry (or was consumed
	// as a raw argument); tokens and the completed buffer are valid.
	resolveOK resolveStatus = iota
	// resolveInvalid: a token matched nothing, or matched several
	// entries while already whitespace-terminated.
	resolveInvalid
	// resolveSuggest: a token matched several entries and is still
	// being typed; candidates should be displayed, not dispatched.
	resolveSuggest
)

// resolution is the result of one resolve pass.
type resolution struct {
	status     resolveStatus
	tokens     []string
	buffer     string   // input with unique-match completions spliced in
	badToken   string   // offending token for resolveInvalid
	vocab      []string // vocabulary at the failing position, for hints
	candidates []string // matches for resolveSuggest
	node       *cmdtree.Node
	argGiven   bool
	endsSpace  bool
}

// token is one whitespace-delimited word with its buffer offset.
type token struct {
	text       string
	start      int
	terminated bool // followed by whitespace in the buffer
}

// splitTokens splits the buffer on whitespace, keeping each word's byte
// offset and whether trailing whitespace follows it. Iteration is by
// rune so multi-byte input never splits mid-character.
func splitTokens(s string) []token {
	var out []token
	start := -1
	for i, r := range s {
		if unicode.IsSpace(r) {
			if start >= 0 {
				out = append(out, token{text: s[start:i], start: start, terminated: true})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, token{text: s[start:], start: start})
	}
	return out
}

// resolve walks the buffer's tokens from the tree root. The matcher is
// rebuilt at every word boundary from the current node's vocabulary so
// it can never answer for a stale tree position.
func resolve(root *cmdtree.Node, input string) resolution {
	input = norm.NFC.String(input)

	res := resolution{
		status: resolveOK,
		buffer: input,
		node:   root,
	}
	res.endsSpace = strings.HasSuffix(input, " ")

	offset := 0 // bytes inserted into res.buffer so far
	for _, tok := range splitTokens(input) {
		arg := res.node.Arg

		// A free-form argument slot consumes the raw token verbatim.
		if arg != nil && len(arg.Values) == 0 {
			res.tokens = append(res.tokens, tok.text)
			res.argGiven = true
			continue
		}

		var vocab []string
		if arg != nil {
			vocab = arg.Values
		} else {
			vocab = res.node.Words()
		}

		matches := match.Build(vocab).Matches(tok.text)
		switch {
		case len(matches) == 0, len(matches) > 1 && tok.terminated:
			res.status = resolveInvalid
			res.badToken = tok.text
			res.vocab = vocab
			return res
		case len(matches) > 1:
			res.status = resolveSuggest
			res.candidates = matches
			return res
		}

		// Exactly one match: splice the missing suffix into the buffer
		// at the token's end and record the canonical literal.
		m := matches[0]
		if len(tok.text) < len(m) {
			end := tok.start + len(tok.text) + offset
			remainder := m[len(tok.text):]
			res.buffer = res.buffer[:end] + remainder + res.buffer[end:]
			offset += len(remainder)
		}
		res.tokens = append(res.tokens, m)

		if arg != nil {
			res.argGiven = true
		} else {
			res.node = res.node.Find(m)
		}
	}
	return res
}

// nextVocabulary returns what can follow the resolved position: the
// node's child words, or its argument values, or a placeholder naming a
// free-form argument slot.
func nextVocabulary(res resolution) []string {
	if res.node.HasChildren() {
		return res.node.Words()
	}
	if arg := res.node.Arg; arg != nil && !res.argGiven {
		if len(arg.Values) > 0 {
			return arg.Values
		}
		return []string{"<" + arg.Name + ">"}
	}
	return nil
}

// expectsMore reports whether the resolved position still has children
// or an unconsumed argument slot.
func expectsMore(res resolution) bool {
	if res.node.HasChildren() {
		return true
	}
	return res.node.Arg != nil && !res.argGiven
}
