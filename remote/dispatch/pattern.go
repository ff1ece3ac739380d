package dispatch

import (
	"fmt"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// Placeholder Kinds
// --------------------------------------------------------------------------

// PlaceholderKind is the type of a placeholder in a command pattern.
type PlaceholderKind uint8

const (
	// KindUInt matches a piece that parses as an unsigned decimal integer
	KindUInt PlaceholderKind = iota
	// KindFloat matches a piece that parses as a decimal floating point number
	KindFloat
	// KindStr matches any piece
	KindStr
)

// String returns the bracketed spelling of a placeholder kind.
func (k PlaceholderKind) String() string {
	switch k {
	case KindUInt:
		return "[uint]"
	case KindFloat:
		return "[float]"
	case KindStr:
		return "[str]"
	default:
		return "[?]"
	}
}

// part is one slash-delimited piece of a pattern token: either a literal
// matched exactly (case-sensitive) or a typed placeholder.
type part struct {
	literal     string
	kind        PlaceholderKind
	placeholder bool
}

// segment is one whitespace-delimited token of a pattern. Tokens are split
// again on "/" so placeholders embedded in a path, as in
// "/camera/[uint]/location", are recognized alongside standalone ones.
type segment struct {
	parts []part
}

// --------------------------------------------------------------------------
// CommandPattern
// --------------------------------------------------------------------------

// CommandPattern is the parsed form of a textual command pattern such as
// "vset /camera/[uint]/location [float] [float] [float]". Immutable after
// parsing.
type CommandPattern struct {
	raw         string
	description string
	segments    []segment
	numArgs     int
}

// ParsePattern tokenizes patternText on whitespace, splits each token on "/"
// and classifies every resulting piece as a literal or a typed placeholder.
// An empty pattern is invalid, as is a bracketed piece that names no known
// placeholder kind.
func ParsePattern(patternText, description string) (*CommandPattern, error) {
	tokens := strings.Fields(patternText)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty command pattern")
	}

	p := &CommandPattern{
		raw:         patternText,
		description: description,
		segments:    make([]segment, 0, len(tokens)),
	}

	for _, token := range tokens {
		pieces := strings.Split(token, "/")
		seg := segment{parts: make([]part, 0, len(pieces))}

		for _, piece := range pieces {
			switch piece {
			case "[uint]":
				seg.parts = append(seg.parts, part{kind: KindUInt, placeholder: true})
				p.numArgs++
			case "[float]":
				seg.parts = append(seg.parts, part{kind: KindFloat, placeholder: true})
				p.numArgs++
			case "[str]":
				seg.parts = append(seg.parts, part{kind: KindStr, placeholder: true})
				p.numArgs++
			default:
				if strings.HasPrefix(piece, "[") && strings.HasSuffix(piece, "]") {
					return nil, fmt.Errorf("unknown placeholder %q in pattern %q", piece, patternText)
				}
				seg.parts = append(seg.parts, part{literal: piece})
			}
		}

		p.segments = append(p.segments, seg)
	}

	return p, nil
}

// Raw returns the original pattern text.
func (p *CommandPattern) Raw() string { return p.raw }

// Description returns the human-readable description of the command.
func (p *CommandPattern) Description() string { return p.description }

// NumArgs returns the number of placeholders.
func (p *CommandPattern) NumArgs() int { return p.numArgs }

// Match walks the tokenized command line against the pattern. Token counts
// must match exactly; each token is split on "/" and must yield the same
// number of pieces as its pattern segment. Literal pieces compare
// case-sensitively; placeholder pieces consume the piece after validating
// its kind, so a placeholder always binds exactly one slash-delimited piece
// (a [str] argument cannot itself contain "/"). Numeric validation is
// strict: a piece that does not parse as the placeholder's kind makes the
// whole pattern a non-match (there is no coercion to a default value).
//
// On success the extracted argument pieces are returned in pattern order.
func (p *CommandPattern) Match(tokens []string) (args []string, ok bool) {
	if len(tokens) != len(p.segments) {
		return nil, false
	}

	args = make([]string, 0, p.numArgs)
	for i, seg := range p.segments {
		pieces := strings.Split(tokens[i], "/")
		if len(pieces) != len(seg.parts) {
			return nil, false
		}

		for j, pt := range seg.parts {
			piece := pieces[j]

			if !pt.placeholder {
				if pt.literal != piece {
					return nil, false
				}
				continue
			}

			switch pt.kind {
			case KindUInt:
				if _, err := strconv.ParseUint(piece, 10, 32); err != nil {
					return nil, false
				}
			case KindFloat:
				if _, err := strconv.ParseFloat(piece, 64); err != nil {
					return nil, false
				}
			}
			args = append(args, piece)
		}
	}

	return args, true
}

// shadows reports whether every command line matching later would also match
// p. Registration order is dispatch priority, so such a later pattern is
// unreachable. The check is conservative: it only claims shadowing when it
// can prove it piece by piece.
func (p *CommandPattern) shadows(later *CommandPattern) bool {
	if len(p.segments) != len(later.segments) {
		return false
	}

	for i, seg := range p.segments {
		lseg := later.segments[i]
		if len(seg.parts) != len(lseg.parts) {
			return false
		}

		for j, earlier := range seg.parts {
			l := lseg.parts[j]

			if !earlier.placeholder {
				// A literal only covers the identical literal.
				if l.placeholder || l.literal != earlier.literal {
					return false
				}
				continue
			}

			// [str] accepts any piece.
			if earlier.kind == KindStr {
				continue
			}

			if l.placeholder {
				// Anything a [uint] accepts, a [float] accepts too.
				if l.kind == earlier.kind || (earlier.kind == KindFloat && l.kind == KindUInt) {
					continue
				}
				return false
			}

			// A literal under a numeric placeholder is covered when it parses.
			ok := false
			switch earlier.kind {
			case KindUInt:
				_, err := strconv.ParseUint(l.literal, 10, 32)
				ok = err == nil
			case KindFloat:
				_, err := strconv.ParseFloat(l.literal, 64)
				ok = err == nil
			}
			if !ok {
				return false
			}
		}
	}

	return true
}
