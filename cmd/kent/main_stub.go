//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The interactive Kent Pattern explorer requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/kent`, or use ./cmd/kent-snapshot to render a PNG.")
	os.Exit(2)
}
