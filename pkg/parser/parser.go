// Package parser splits a raw command line into tokens and casts each one through a cast.Chain.
//
// The grammar is deliberately small: tokens are separated by whitespace, and a token that
// starts with ", ' or ` extends to the next occurrence of the same character. There are no
// escape sequences and no nesting.
package parser

import (
	"strings"
	"unicode"

	"github.com/aretw0/promptmenu/pkg/cast"
	"github.com/aretw0/promptmenu/pkg/domain"
)

const quotes = "\"'`"

// Parser tokenizes command strings.
type Parser struct {
	chain *cast.Chain
}

// New creates a parser applying chain to every token. A nil chain is the identity.
func New(chain *cast.Chain) *Parser {
	return &Parser{chain: chain}
}

// Chain returns the cast chain used by the parser.
func (p *Parser) Chain() *cast.Chain {
	return p.chain
}

// Split parses only the first token of line and returns it together with the raw remainder,
// with its leading whitespace removed. ok is false when line is blank.
func (p *Parser) Split(line string) (head any, rest string, ok bool, err error) {
	raw, rest, ok, err := scan(line)
	if err != nil || !ok {
		return nil, "", ok, err
	}
	head, err = p.chain.Apply(raw)
	if err != nil {
		return nil, "", false, err
	}
	return head, rest, true, nil
}

// Parse tokenizes line.
//
// With recurse set, every token is parsed and cast and the result is flat.
// Without it, only the head token is parsed: the result is [head] when nothing follows, or
// [head, remainder] where remainder is the unparsed rest of the line.
// A blank line yields an empty slice.
func (p *Parser) Parse(line string, recurse bool) ([]any, error) {
	var out []any
	for {
		head, rest, ok, err := p.Split(line)
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, head)
		if rest == "" {
			return out, nil
		}
		if !recurse {
			return append(out, rest), nil
		}
		line = rest
	}
}

// scan finds the first raw token of line.
func scan(line string) (token, rest string, ok bool, err error) {
	s := strings.TrimLeftFunc(line, unicode.IsSpace)
	if s == "" {
		return "", "", false, nil
	}

	if delim := s[0]; strings.IndexByte(quotes, delim) >= 0 {
		end := strings.IndexByte(s[1:], delim)
		if end < 0 {
			return "", "", false, domain.NewArgumentError(domain.ErrUnterminatedQuote,
				"no closing quote found in: %s", s)
		}
		token = s[1 : end+1]
		rest = strings.TrimLeftFunc(s[end+2:], unicode.IsSpace)
		return token, rest, true, nil
	}

	end := strings.IndexFunc(s, unicode.IsSpace)
	if end < 0 {
		return s, "", true, nil
	}
	return s[:end], strings.TrimLeftFunc(s[end:], unicode.IsSpace), true, nil
}
