package token

import (
	"unicode"
	"unicode/utf8"

	"github.com/planetarypy/pvl-format/go-pvl/debug"
)

// Tokenize scans PVL label text into tokens. Comments (/* ... */ and
// # to end of line) are skipped. The returned tokens share position
// tracking through one PosDoc, so error messages can name line and
// column.
func Tokenize(d []byte) ([]Token, error) {
	if !utf8.Valid(d) {
		return nil, ErrBadUTF8
	}
	doc := &PosDoc{d: d}
	var toks []Token
	i := 0
	n := len(d)
	for i < n {
		c := d[i]
		switch {
		case c == '\n':
			doc.nl(i)
			i++
		case c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f':
			i++
		case c == '#':
			for i < n && d[i] != '\n' {
				i++
			}
		case c == '/' && i+1 < n && d[i+1] == '*':
			end, err := scanBlockComment(d, i, doc)
			if err != nil {
				return nil, err
			}
			i = end
		case c == '=':
			toks = append(toks, Token{Type: TEquals, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == '(':
			toks = append(toks, Token{Type: TLParen, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == ')':
			toks = append(toks, Token{Type: TRParen, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == '{':
			toks = append(toks, Token{Type: TLCurl, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == '}':
			toks = append(toks, Token{Type: TRCurl, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == ',':
			toks = append(toks, Token{Type: TComma, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == '<':
			end, tok, err := scanUnits(d, i, doc)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i = end
		case c == '"' || c == '\'':
			end, tok, err := scanQuoted(d, i, doc)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i = end
		case asciiDigit(c) || isSignedNumberStart(d[i:]):
			end, tok, err := scanNumber(d, i, doc)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i = end
		default:
			end := scanLiteral(d, i)
			if end == i {
				return nil, UnexpectedErr(string(d[i]), doc.Pos(i))
			}
			toks = append(toks, Token{Type: TLiteral, Pos: doc.Pos(i), Bytes: d[i:end]})
			i = end
		}
	}
	if debug.Lex() {
		for i := range toks {
			debug.Logf("token %d: %s %q", i, toks[i].Type, string(toks[i].Bytes))
		}
	}
	return toks, nil
}

func isSignedNumberStart(d []byte) bool {
	if len(d) < 2 {
		return false
	}
	switch d[0] {
	case '+', '-':
	default:
		return false
	}
	if asciiDigit(d[1]) {
		return true
	}
	return d[1] == '.' && len(d) > 2 && asciiDigit(d[2])
}

func scanBlockComment(d []byte, i int, doc *PosDoc) (int, error) {
	start := i
	i += 2
	for i < len(d) {
		if d[i] == '\n' {
			doc.nl(i)
		}
		if d[i] == '*' && i+1 < len(d) && d[i+1] == '/' {
			return i + 2, nil
		}
		i++
	}
	return 0, NewTokenizeErr(ErrUnterminated, doc.Pos(start))
}

func scanUnits(d []byte, i int, doc *PosDoc) (int, Token, error) {
	start := i
	i++
	for i < len(d) {
		switch d[i] {
		case '>':
			return i + 1, Token{
				Type:  TUnits,
				Pos:   doc.Pos(start),
				Bytes: d[start+1 : i],
			}, nil
		case '\n':
			return 0, Token{}, NewTokenizeErr(ErrUnterminated, doc.Pos(start))
		}
		i++
	}
	return 0, Token{}, NewTokenizeErr(ErrUnterminated, doc.Pos(start))
}

func scanQuoted(d []byte, i int, doc *PosDoc) (int, Token, error) {
	start := i
	q := d[i]
	i++
	for i < len(d) {
		if d[i] == '\n' {
			doc.nl(i)
		}
		if d[i] == q {
			return i + 1, Token{
				Type:  TString,
				Pos:   doc.Pos(start),
				Bytes: d[start : i+1],
			}, nil
		}
		i++
	}
	return 0, Token{}, NewTokenizeErr(ErrUnterminated, doc.Pos(start))
}

func scanNumber(d []byte, i int, doc *PosDoc) (int, Token, error) {
	start := i
	if d[i] == '+' || d[i] == '-' {
		i++
	}
	sz, isReal, err := number(d[i:])
	if err != nil {
		return 0, Token{}, NewTokenizeErr(err, doc.Pos(start))
	}
	tt := TInteger
	if isReal {
		tt = TReal
	}
	return i + sz, Token{
		Type:  tt,
		Pos:   doc.Pos(start),
		Bytes: d[start : i+sz],
	}, nil
}

func scanLiteral(d []byte, i int) int {
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		if !isLiteralRune(r) {
			return i
		}
		i += sz
	}
	return i
}

func isLiteralRune(r rune) bool {
	switch r {
	case '_', '$', ':', '.', '-', '+', '~':
		return true
	}
	if unicode.IsSpace(r) || unicode.IsControl(r) {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
