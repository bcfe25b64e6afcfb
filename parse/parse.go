package parse

import (
	"fmt"
	"strconv"

	"github.com/planetarypy/pvl-format/go-pvl/debug"
	"github.com/planetarypy/pvl-format/go-pvl/format"
	"github.com/planetarypy/pvl-format/go-pvl/ir"
	"github.com/planetarypy/pvl-format/go-pvl/token"
)

// Parse parses label text into a tree rooted at an Object node.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{flavor: format.OmniFlavor}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(d)
	if err != nil {
		return nil, err
	}
	root := ir.NewObject()
	off := 0
	sawEnd, err := parseBlock(toks, &off, root, 0, pOpts)
	if err != nil {
		return nil, err
	}
	if off < len(toks) {
		return nil, fmt.Errorf("%w: %v", ErrParse,
			token.UnexpectedErr(string(toks[off].Bytes), toks[off].Pos))
	}
	if !sawEnd && pOpts.requireEnd() {
		return nil, fmt.Errorf("%w: missing END statement", ErrParse)
	}
	if debug.Parse() {
		debug.Logf("parsed %s with %d top-level entries", pOpts.flavor, root.Len())
	}
	return root, nil
}

// parseBlock consumes statements into the given mapping until the
// block closes. At depth 0 the block closes at the terminal END or at
// end of input; nested blocks close at their end keyword. The returned
// bool reports whether a terminal END was seen.
func parseBlock(toks []token.Token, pi *int, into *ir.Node, depth int, opts *parseOpts) (bool, error) {
	for *pi < len(toks) {
		t := &toks[*pi]
		if t.Type != token.TLiteral {
			return false, token.ExpectedErr("parameter name", t.Pos)
		}
		word := string(t.Bytes)
		switch opts.keyword(word) {
		case kwEnd:
			// PDS3 writes END for group and object closes too; the
			// assignment token after it distinguishes a close line
			// from the label terminal.
			if *pi+1 < len(toks) && toks[*pi+1].Type == token.TEquals {
				if depth == 0 {
					return false, token.UnexpectedErr(word, t.Pos)
				}
				*pi += 2
				if _, err := blockName(toks, pi); err != nil {
					return false, err
				}
				return false, nil
			}
			*pi++
			if depth > 0 {
				return false, fmt.Errorf("%w: END inside open block", ErrParse)
			}
			return true, nil
		case kwEndGroup:
			return false, closeBlock(toks, pi, into, ir.GroupType, depth, word, t)
		case kwEndObject:
			return false, closeBlock(toks, pi, into, ir.ObjectType, depth, word, t)
		case kwGroup:
			if err := openBlock(toks, pi, into, ir.NewGroup(), depth, opts); err != nil {
				return false, err
			}
		case kwObject:
			if err := openBlock(toks, pi, into, ir.NewObject(), depth, opts); err != nil {
				return false, err
			}
		default:
			*pi++
			if err := expect(toks, pi, token.TEquals, "="); err != nil {
				return false, err
			}
			v, err := parseValue(toks, pi, opts)
			if err != nil {
				return false, err
			}
			into.Add(word, v)
		}
	}
	if depth > 0 {
		return false, fmt.Errorf("%w: unterminated block", ErrParse)
	}
	return false, nil
}

func openBlock(toks []token.Token, pi *int, into, child *ir.Node, depth int, opts *parseOpts) error {
	*pi++
	if err := expect(toks, pi, token.TEquals, "="); err != nil {
		return err
	}
	name, err := blockName(toks, pi)
	if err != nil {
		return err
	}
	if _, err := parseBlock(toks, pi, child, depth+1, opts); err != nil {
		return err
	}
	into.Add(name, child)
	return nil
}

// closeBlock consumes a close line (END_GROUP / END_OBJECT, with an
// optional repeated name). The repeated name is accepted but not
// matched against the opening name; pairing is by nesting alone.
func closeBlock(toks []token.Token, pi *int, into *ir.Node, want ir.Type, depth int, word string, t *token.Token) error {
	if depth == 0 {
		return token.UnexpectedErr(word, t.Pos)
	}
	if into.Type != want {
		return fmt.Errorf("%w: %s closes a %s block", ErrParse, word, into.Type)
	}
	*pi++
	if *pi < len(toks) && toks[*pi].Type == token.TEquals {
		*pi++
		if _, err := blockName(toks, pi); err != nil {
			return err
		}
	}
	return nil
}

func blockName(toks []token.Token, pi *int) (string, error) {
	if *pi >= len(toks) {
		return "", fmt.Errorf("%w: missing block name", ErrParse)
	}
	t := &toks[*pi]
	switch t.Type {
	case token.TLiteral:
		*pi++
		return string(t.Bytes), nil
	case token.TString:
		*pi++
		return t.String(), nil
	default:
		return "", token.ExpectedErr("block name", t.Pos)
	}
}

func expect(toks []token.Token, pi *int, tt token.TokenType, what string) error {
	if *pi >= len(toks) {
		return fmt.Errorf("%w: missing %s", ErrParse, what)
	}
	if toks[*pi].Type != tt {
		return token.ExpectedErr(what, toks[*pi].Pos)
	}
	*pi++
	return nil
}

func parseValue(toks []token.Token, pi *int, opts *parseOpts) (*ir.Node, error) {
	if *pi >= len(toks) {
		return nil, fmt.Errorf("%w: missing value", ErrParse)
	}
	t := &toks[*pi]
	switch t.Type {
	case token.TInteger:
		*pi++
		i, err := strconv.ParseInt(string(t.Bytes), 10, 64)
		if err != nil {
			// out of int64 range; keep the magnitude as a real
			f, ferr := strconv.ParseFloat(string(t.Bytes), 64)
			if ferr != nil {
				return nil, fmt.Errorf("%w: %v", errInternal, err)
			}
			return withUnits(ir.FromFloat(f), toks, pi), nil
		}
		return withUnits(ir.FromInt(i), toks, pi), nil
	case token.TReal:
		*pi++
		f, err := strconv.ParseFloat(string(t.Bytes), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInternal, err)
		}
		return withUnits(ir.FromFloat(f), toks, pi), nil
	case token.TString:
		*pi++
		return withUnits(ir.FromText(t.String()), toks, pi), nil
	case token.TLiteral:
		word := string(t.Bytes)
		if sc, ok := opts.scalarWord(word); ok {
			*pi++
			return withUnits(sc, toks, pi), nil
		}
		if opts.keyword(word) != kwNone {
			return nil, token.UnexpectedErr(word, t.Pos)
		}
		*pi++
		return withUnits(ir.FromText(word), toks, pi), nil
	case token.TLParen:
		*pi++
		elems, err := parseElems(toks, pi, token.TRParen, opts)
		if err != nil {
			return nil, err
		}
		return withUnits(ir.FromSlice(elems), toks, pi), nil
	case token.TLCurl:
		*pi++
		elems, err := parseElems(toks, pi, token.TRCurl, opts)
		if err != nil {
			return nil, err
		}
		return withUnits(ir.SetOf(elems...), toks, pi), nil
	default:
		return nil, token.UnexpectedErr(string(t.Bytes), t.Pos)
	}
}

func parseElems(toks []token.Token, pi *int, closeType token.TokenType, opts *parseOpts) ([]*ir.Node, error) {
	var elems []*ir.Node
	for {
		if *pi >= len(toks) {
			return nil, fmt.Errorf("%w: unterminated collection", ErrParse)
		}
		if toks[*pi].Type == closeType {
			*pi++
			return elems, nil
		}
		v, err := parseValue(toks, pi, opts)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
		if *pi < len(toks) && toks[*pi].Type == token.TComma {
			*pi++
		}
	}
}

// withUnits wraps the node with a units annotation when the next token
// is a units expression.
func withUnits(y *ir.Node, toks []token.Token, pi *int) *ir.Node {
	if *pi < len(toks) && toks[*pi].Type == token.TUnits {
		y = y.WithUnits(string(toks[*pi].Bytes))
		*pi++
	}
	return y
}
