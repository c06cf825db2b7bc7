package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Load    bool
	Merge   bool
	Patch   bool
	Diff    bool
	Eval    bool
	Resolve bool
	Overlay bool
}

var d *debug

func init() {
	d = &debug{}
	d.Load = boolEnv("JOT_DEBUG_LOAD")
	d.Merge = boolEnv("JOT_DEBUG_MERGE")
	d.Patch = boolEnv("JOT_DEBUG_PATCH")
	d.Diff = boolEnv("JOT_DEBUG_DIFF")
	d.Eval = boolEnv("JOT_DEBUG_EVAL")
	d.Resolve = boolEnv("JOT_DEBUG_RESOLVE")
	d.Overlay = boolEnv("JOT_DEBUG_OVERLAY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Load() bool {
	return d.Load
}
func Merge() bool {
	return d.Merge
}
func Patch() bool {
	return d.Patch
}
func Diff() bool {
	return d.Diff
}
func Eval() bool {
	return d.Eval
}
func Resolve() bool {
	return d.Resolve
}
func Overlay() bool {
	return d.Overlay
}
