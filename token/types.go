package token

import "fmt"

type TokenType int

const (
	TLiteral TokenType = iota
	TString
	TInteger
	TReal
	TEquals
	TLParen
	TRParen
	TLCurl
	TRCurl
	TComma
	TUnits
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TLiteral: "TLiteral",
		TString:  "TString",
		TInteger: "TInteger",
		TReal:    "TReal",
		TEquals:  "TEquals",
		TLParen:  "TLParen",
		TRParen:  "TRParen",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TComma:   "TComma",
		TUnits:   "TUnits",
	}[t]
}

// Token is one lexical element of a label. For TString, Bytes holds
// the raw quoted form; for TUnits, the text between the angle
// brackets; otherwise the element's bytes as written.
type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the token's value form: quoted strings are unquoted,
// everything else is returned as written.
func (t *Token) String() string {
	if t.Type == TString && len(t.Bytes) >= 2 {
		return string(t.Bytes[1 : len(t.Bytes)-1])
	}
	return string(t.Bytes)
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("unexpected %s", what), p)
}
