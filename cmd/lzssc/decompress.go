package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ecultools/lzss"
)

func newDecompressCmd() *cobra.Command {
	var inPath, outPath, configPath string
	var length int

	cmd := &cobra.Command{
		Use:   "decompress",
		Short: "Decompress an LZSS bitstream",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecompress(inPath, outPath, configPath, length)
		},
	}

	cmd.Flags().StringVarP(&inPath, "input", "i", "-", "input file, or - for stdin")
	cmd.Flags().StringVarP(&outPath, "output", "o", "-", "output file, or - for stdout")
	cmd.Flags().StringVar(&configPath, "config", "", "optional YAML file with index_bits/length_bits overrides")
	cmd.Flags().IntVar(&length, "length", -1, "exact decompressed output length in bytes (required; the wire format carries no explicit length)")
	_ = cmd.MarkFlagRequired("length")

	return cmd
}

func runDecompress(inPath, outPath, configPath string, length int) error {
	if length < 0 {
		return fmt.Errorf("lzssc: --length is required and must be >= 0")
	}

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

	dec, err := lzss.NewDecoder(params)
	if err != nil {
		return fmt.Errorf("lzssc: %w", err)
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("lzssc: reading %s: %w", inPath, err)
	}

	decompressed, err := dec.Decompress(data, length)
	if err != nil {
		return fmt.Errorf("lzssc: decompressing: %w", err)
	}

	if _, err := out.Write(decompressed); err != nil {
		return fmt.Errorf("lzssc: writing %s: %w", outPath, err)
	}

	logger.Printf("decompressed %d bytes -> %d bytes", len(data), len(decompressed))
	return nil
}
