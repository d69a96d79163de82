package pattern

import (
	"golang.org/x/text/unicode/norm"
)

// LiteralKind discriminates the payload carried by a Literal.
type LiteralKind uint8

const (
	LitInt LiteralKind = iota
	LitU128
	LitBit
	LitByte
	LitFloat
	LitDecimal
	LitStr
)

// Literal is one of the scalar values a LiteralPattern can match against.
// Int, U128 and Decimal are opaque 16-byte payloads (the caller's runtime
// representation, copied verbatim); Float is stored by bit pattern so that
// NaN compares equal to itself by bits, matching the source language's
// pattern-match semantics rather than IEEE-754 comparison semantics.
type Literal struct {
	Kind  LiteralKind
	Int   [16]byte
	Bit   bool
	Byte  byte
	Float uint64
	Str   string
}

// NewStrLiteral builds a string literal, NFC-normalizing s first so that two
// source strings that are byte-distinct but canonically equivalent (e.g. an
// accented character written as a precomposed code point vs. a base letter
// plus combining mark) compare equal as patterns. This mirrors how the
// lexer normalizes source text before tokenizing: canonicalize once at the
// boundary, compare by simple equality everywhere after.
func NewStrLiteral(s string) Literal {
	b := []byte(s)
	if !norm.NFC.IsNormal(b) {
		b = norm.NFC.Bytes(b)
	}
	return Literal{Kind: LitStr, Str: string(b)}
}

// Equal reports whether two literals denote the same value. Literals of
// different kinds are never equal; this must only be called on literals
// occupying the same pattern column, where the type checker guarantees a
// single literal kind.
func (l Literal) Equal(other Literal) bool {
	if l.Kind != other.Kind {
		return false
	}
	switch l.Kind {
	case LitInt, LitU128, LitDecimal:
		return l.Int == other.Int
	case LitBit:
		return l.Bit == other.Bit
	case LitByte:
		return l.Byte == other.Byte
	case LitFloat:
		return l.Float == other.Float
	case LitStr:
		return l.Str == other.Str
	default:
		return false
	}
}
