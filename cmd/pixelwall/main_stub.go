//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of pixel-wall requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/pixelwall` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "Use ./cmd/wall-probe to inspect layout and hit testing without a display.")
	os.Exit(2)
}
