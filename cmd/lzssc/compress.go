package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ecultools/lzss"
)

func newCompressCmd() *cobra.Command {
	var inPath, outPath, configPath string

	cmd := &cobra.Command{
		Use:   "compress",
		Short: "Compress a file into the LZSS bitstream format",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompress(inPath, outPath, configPath)
		},
	}

	cmd.Flags().StringVarP(&inPath, "input", "i", "-", "input file, or - for stdin")
	cmd.Flags().StringVarP(&outPath, "output", "o", "-", "output file, or - for stdout")
	cmd.Flags().StringVar(&configPath, "config", "", "optional YAML file with index_bits/length_bits overrides")

	return cmd
}

func runCompress(inPath, outPath, configPath string) error {
	params, err := loadParams(configPath)
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(inPath)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := openOutput(outPath)
	if err != nil {
		return err
	}
	defer closeOut()

	enc, err := lzss.NewEncoder(params)
	if err != nil {
		return fmt.Errorf("lzssc: %w", err)
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("lzssc: reading %s: %w", inPath, err)
	}

	compressed, err := enc.Compress(data)
	if err != nil {
		return fmt.Errorf("lzssc: compressing: %w", err)
	}

	if _, err := out.Write(compressed); err != nil {
		return fmt.Errorf("lzssc: writing %s: %w", outPath, err)
	}

	logger.Printf("compressed %d bytes -> %d bytes", len(data), len(compressed))
	return nil
}

func loadParams(configPath string) (*lzss.Params, error) {
	if configPath == "" {
		return lzss.DefaultParams(), nil
	}
	return lzss.LoadParams(configPath)
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("lzssc: opening %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("lzssc: creating %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}
