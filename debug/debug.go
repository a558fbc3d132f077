package debug

import (
	"io"
	"os"
	"strconv"
)

type debug struct {
	Validate bool
	Union    bool
	Build    bool
	Parse    bool
	Gen      bool
}

var (
	d   *debug
	out io.Writer = os.Stderr
)

func init() {
	d = &debug{}
	d.Validate = boolEnv("RT_DEBUG_VALIDATE")
	d.Union = boolEnv("RT_DEBUG_UNION")
	d.Build = boolEnv("RT_DEBUG_BUILD")
	d.Parse = boolEnv("RT_DEBUG_PARSE")
	d.Gen = boolEnv("RT_DEBUG_GEN")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Validate() bool {
	return d.Validate
}
func Union() bool {
	return d.Union
}
func Build() bool {
	return d.Build
}
func Parse() bool {
	return d.Parse
}
func Gen() bool {
	return d.Gen
}

// SetOutput redirects debug output, returning the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}
