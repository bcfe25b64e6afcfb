package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Lex   bool
	Parse bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lex = boolEnv("PVL_DEBUG_LEX")
	d.Parse = boolEnv("PVL_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lex() bool {
	return d.Lex
}
func Parse() bool {
	return d.Parse
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
