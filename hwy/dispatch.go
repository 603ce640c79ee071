package hwy

import (
	"os"
	"strconv"
)

// CurrentName reports the fixed vector width this build targets, in the
// same spirit as a portable Highway package's CurrentName but without any
// actual runtime dispatch: gemm always compiles for this one width.
func CurrentName() string {
	return "float64x8"
}

// NoSIMDEnv reports whether HWY_NO_SIMD is set, mirroring the teacher's env
// var escape hatch. gemm's core package never reads this itself; it exists
// for ambient tools (cmd/gemminfo) that want to describe the environment an
// operator is running in.
func NoSIMDEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
