// Command gemminfo reports whether the current machine actually has the
// hardware this module's fixed-width microkernel targets, and prints the
// blocking parameters gemm.DeriveBlocking would hand gemm.Basic.
package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/gemmcore/gemm"
	"github.com/ajroetker/gemmcore/hwy"
)

func main() {
	fmt.Printf("GOOS/GOARCH:     %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("NumCPU:          %d\n", runtime.NumCPU())
	fmt.Printf("GOMAXPROCS:      %d\n", runtime.GOMAXPROCS(0))
	fmt.Println()

	fmt.Printf("hwy target:      %s (N=%d lanes)\n", hwy.CurrentName(), hwy.N)
	fmt.Printf("HWY_NO_SIMD:     %v\n", hwy.NoSIMDEnv())
	fmt.Println()

	if runtime.GOARCH == "amd64" {
		printAMD64Features()
	} else {
		fmt.Printf("no feature check for GOARCH=%s; gemm's fixed 512-bit target assumes amd64/AVX-512\n", runtime.GOARCH)
	}
	fmt.Println()

	params := gemm.DeriveBlocking(gemm.MR, gemm.NR, 8)
	fmt.Printf("blocking params: MR=%d NR=%d KC=%d MC=%d NC=%d\n", params.MR, params.NR, params.KC, params.MC, params.NC)
	fmt.Printf("packed RHS elems: %d, packed LHS elems/thread: %d\n", params.PackedRHSElems(), params.PackedLHSElems())
}

func printAMD64Features() {
	fmt.Println("AMD64 features relevant to gemm's microkernel:")
	fmt.Printf("  AVX512F: %v\n", cpu.X86.HasAVX512F)
	fmt.Printf("  FMA:     %v\n", cpu.X86.HasFMA)
	if !cpu.X86.HasAVX512F {
		fmt.Println("  warning: no AVX-512F detected; gemm's 8-lane float64 target does not match this CPU's native register width")
	}
}
