// Command sigkernel runs the convolution, kernel and interpolation
// primitives of go-sigkernel from the command line.
//
// Usage:
//
//	sigkernel convolve --signal 1,2,3 --kernel 0,1,0.5
//	sigkernel convolve --input pair.json5 --mode valid --step 2 -o yaml
//	sigkernel kernel --name keys --size 9 --response
//	sigkernel upsample --ratio 2 --kernel linear input.wav output.wav
//
// Settings come from flags, SIGKERNEL_* environment variables and an
// optional sigkernel.yaml, in that order of precedence.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
