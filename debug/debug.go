package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokenize bool
	Reduce   bool
	Sat      bool
	Query    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokenize = boolEnv("TT_DEBUG_TOKENIZE")
	d.Reduce = boolEnv("TT_DEBUG_REDUCE")
	d.Sat = boolEnv("TT_DEBUG_SAT")
	d.Query = boolEnv("TT_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokenize() bool {
	return d.Tokenize
}
func Reduce() bool {
	return d.Reduce
}
func Sat() bool {
	return d.Sat
}
func Query() bool {
	return d.Query
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
