// Command lzssc compresses or decompresses a file with the tree-based LZSS
// codec. It is the "surrounding CLI/driver" the core package treats as an
// external collaborator (spec §1).
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var logger = log.New(os.Stderr, "lzssc: ", log.LstdFlags)

func main() {
	root := &cobra.Command{
		Use:   "lzssc",
		Short: "tree-based LZSS compressor/decompressor",
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(newCompressCmd())
	root.AddCommand(newDecompressCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
