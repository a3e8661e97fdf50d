package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Reduce bool
	Diff   bool
	Eval   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("DERIVE_DEBUG_PARSE")
	d.Reduce = boolEnv("DERIVE_DEBUG_REDUCE")
	d.Diff = boolEnv("DERIVE_DEBUG_DIFF")
	d.Eval = boolEnv("DERIVE_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Reduce() bool {
	return d.Reduce
}
func Diff() bool {
	return d.Diff
}
func Eval() bool {
	return d.Eval
}
