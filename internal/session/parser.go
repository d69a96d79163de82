package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/patcheck/exhaustive/internal/pattern"
)

// parsePattern parses a session line into a single pattern. Grammar:
//
//	pattern  := '_' | INT | ctor | list
//	ctor     := NAME [ '(' pattern (',' pattern)* ')' ]
//	list     := '[' ']'
//	          | '[' pattern (',' pattern)* ']'
//	          | '[' [ pattern (',' pattern)* ',' ] '..' (',' pattern)* ']'
//
// A list containing '..' is an open slice; the patterns before '..' are its
// fixed head, the patterns after are its fixed tail.
func parsePattern(line string, tagByName map[string]pattern.TagId, union pattern.Union) (pattern.Pattern, error) {
	toks := tokenize(line)
	if len(toks) == 0 {
		return nil, fmt.Errorf("empty pattern")
	}
	p := &parser{toks: toks, tagByName: tagByName, union: union}
	result, err := p.parseOne()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("unexpected trailing input at %q", p.toks[p.pos])
	}
	return result, nil
}

func tokenize(line string) []string {
	var b strings.Builder
	for _, r := range line {
		switch r {
		case '(', ')', '[', ']', ',':
			b.WriteRune(' ')
			b.WriteRune(r)
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	return strings.Fields(b.String())
}

type parser struct {
	toks      []string
	pos       int
	tagByName map[string]pattern.TagId
	union     pattern.Union
}

func (p *parser) peek() string {
	if p.pos >= len(p.toks) {
		return ""
	}
	return p.toks[p.pos]
}

func (p *parser) next() string {
	t := p.peek()
	p.pos++
	return t
}

func (p *parser) parseOne() (pattern.Pattern, error) {
	tok := p.peek()
	switch {
	case tok == "":
		return nil, fmt.Errorf("unexpected end of input")
	case tok == "_":
		p.next()
		return pattern.AnythingPattern, nil
	case tok == "[":
		return p.parseList()
	case isInt(tok):
		p.next()
		return parseIntLiteral(tok)
	default:
		return p.parseCtor()
	}
}

func (p *parser) parseCtor() (pattern.Pattern, error) {
	name := p.next()
	tagID, ok := p.tagByName[name]
	if !ok {
		return nil, fmt.Errorf("unknown constructor %q", name)
	}
	var args []pattern.Pattern
	if p.peek() == "(" {
		p.next()
		for {
			if p.peek() == ")" {
				break
			}
			arg, err := p.parseOne()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.peek() == "," {
				p.next()
				continue
			}
			break
		}
		if p.next() != ")" {
			return nil, fmt.Errorf("expected ) after %s's arguments", name)
		}
	}
	return pattern.CtorPattern{Union: p.union, TagID: tagID, Args: args}, nil
}

func (p *parser) parseList() (pattern.Pattern, error) {
	p.next() // consume '['
	var before, after []pattern.Pattern
	seenGap := false
	cur := &before

	for p.peek() != "]" {
		if p.peek() == ".." {
			if seenGap {
				return nil, fmt.Errorf("a list pattern may contain at most one ..")
			}
			seenGap = true
			p.next()
			cur = &after
			if p.peek() == "," {
				p.next()
			}
			continue
		}
		item, err := p.parseOne()
		if err != nil {
			return nil, err
		}
		*cur = append(*cur, item)
		if p.peek() == "," {
			p.next()
			continue
		}
		break
	}
	if p.next() != "]" {
		return nil, fmt.Errorf("expected ] to close list pattern")
	}

	if !seenGap {
		return pattern.ListPattern{Arity: pattern.Exact(len(before)), Args: before}, nil
	}
	args := append(append([]pattern.Pattern(nil), before...), after...)
	return pattern.ListPattern{Arity: pattern.Slice(len(before), len(after)), Args: args}, nil
}

func isInt(tok string) bool {
	if tok == "" {
		return false
	}
	_, err := strconv.ParseInt(tok, 10, 64)
	return err == nil
}

func parseIntLiteral(tok string) (pattern.Pattern, error) {
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid integer literal %q: %w", tok, err)
	}
	var b [16]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
	return pattern.LiteralPattern{Value: pattern.Literal{Kind: pattern.LitInt, Int: b}}, nil
}
