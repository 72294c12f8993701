package template

import (
	"strconv"
	"strings"
)

// argToken is one raw helper argument plus whether it came from a
// double-quoted span.
type argToken struct {
	text   string
	quoted bool
}

// splitArgs splits raw helper argument text on whitespace. A double-quoted
// span is a single token with the quotes stripped; there are no escape
// sequences inside quotes.
func splitArgs(raw string) []argToken {
	var tokens []argToken
	var current strings.Builder
	inQuote := false
	quoted := false

	flush := func() {
		if current.Len() > 0 || quoted {
			tokens = append(tokens, argToken{text: current.String(), quoted: quoted})
			current.Reset()
			quoted = false
		}
	}

	for _, ch := range raw {
		switch {
		case ch == '"':
			if inQuote {
				inQuote = false
			} else {
				inQuote = true
				quoted = true
			}
		case !inQuote && (ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'):
			flush()
		default:
			current.WriteRune(ch)
		}
	}
	flush()
	return tokens
}

// parseArgs tokenizes and classifies helper arguments. Classification
// precedence: quoted tokens are string literals, then the boolean
// literals, then numeric literals, and anything left resolves as a dotted
// data path (yielding whatever value, including nil, the path holds).
// A bare numeric-looking name can therefore never be a path lookup.
func parseArgs(raw string, ctx any) []any {
	tokens := splitArgs(raw)
	args := make([]any, len(tokens))
	for i, tok := range tokens {
		args[i] = classifyArg(tok, ctx)
	}
	return args
}

func classifyArg(tok argToken, ctx any) any {
	if tok.quoted {
		return tok.text
	}
	switch tok.text {
	case "true":
		return true
	case "false":
		return false
	}
	if numericToken(tok.text) {
		if n, err := strconv.ParseFloat(tok.text, 64); err == nil {
			return n
		}
	}
	return resolvePath(ctx, tok.text)
}

// numericToken reports whether s starts like a number literal. ParseFloat
// alone is too permissive for classification: it accepts "inf" and "nan",
// which must stay available as data path names.
func numericToken(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	return s != "" && (s[0] == '.' || s[0] >= '0' && s[0] <= '9')
}
