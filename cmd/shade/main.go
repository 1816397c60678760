// Command shade manages dark and light color palettes.
package main

import (
	"fmt"
	"os"

	"github.com/opencode-ai/shade/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
