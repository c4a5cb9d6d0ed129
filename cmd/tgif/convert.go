package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/urjaman/tgif/internal/quantize"
	"github.com/urjaman/tgif/internal/srcimage"
	"github.com/urjaman/tgif/internal/tgif"
)

type convertOptions struct {
	output      string
	maxColors   int
	sramLimit   int
	concurrency int
}

func newConvertCmd() *cobra.Command {
	opts := convertOptions{maxColors: tgif.MaxPaletteSize, sramLimit: tgif.MaxSRAMLimit}

	cmd := &cobra.Command{
		Use:   "convert <input>... | convert <in> <out> [sram]",
		Short: "Convert one or more images to TGIF",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if in, out, sram, ok := parseLegacyPositional(cmd, args); ok {
				opts.sramLimit = sram
				return convertOne(in, out, opts)
			}
			return runConvert(args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output path (single input) or output directory (multiple inputs)")
	cmd.Flags().IntVarP(&opts.maxColors, "colors", "c", tgif.MaxPaletteSize, "maximum palette size (1-256)")
	cmd.Flags().IntVarP(&opts.sramLimit, "sram", "s", tgif.MaxSRAMLimit, "decoder SRAM budget in bytes (rounded down to a multiple of 256)")
	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "j", runtime.NumCPU(), "number of parallel workers for batch conversion")

	return cmd
}

// parseLegacyPositional recognizes the spec.md §6 single-file invocation
// shape, `tgif convert in.gif out.bin [sram]`, preserved for argument
// compatibility with the original CLI. It only fires when --output was not
// given explicitly and the trailing argument (if any) parses as an integer
// SRAM budget; anything else falls through to the flag-driven batch path.
func parseLegacyPositional(cmd *cobra.Command, args []string) (in, out string, sram int, ok bool) {
	if cmd.Flags().Changed("output") {
		return "", "", 0, false
	}
	switch len(args) {
	case 2:
		return args[0], args[1], tgif.MaxSRAMLimit, true
	case 3:
		n, err := strconv.Atoi(args[2])
		if err != nil {
			return "", "", 0, false
		}
		return args[0], args[1], n, true
	default:
		return "", "", 0, false
	}
}

func runConvert(inputs []string, opts convertOptions) error {
	if len(inputs) == 1 {
		return convertOne(inputs[0], outputPathFor(inputs[0], opts.output, false), opts)
	}
	return convertBatch(inputs, opts)
}

func outputPathFor(input, output string, batch bool) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input)) + ".tgif"
	}
	if !batch {
		return output
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".tgif"
	return filepath.Join(output, base)
}

func convertOne(input, output string, opts convertOptions) error {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Prefix = fmt.Sprintf("Converting %s... ", input)
	s.Start()
	err := convertFile(input, output, opts)
	s.Stop()
	if err != nil {
		return fmt.Errorf("converting %s: %w", input, err)
	}
	fmt.Printf("%s %s -> %s\n", color.GreenString("done"), input, output)
	return nil
}

// convertBatch runs a fixed worker pool over inputs, grounded on
// internal/tile/generator.go's Config.Concurrency job-channel shape, and
// renders progress with internal/tile/progress.go's ticker-driven bar
// adapted to count converted files instead of tiles.
func convertBatch(inputs []string, opts convertOptions) error {
	if opts.output == "" {
		return fmt.Errorf("tgif convert: --output directory is required when converting more than one file")
	}
	if err := os.MkdirAll(opts.output, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", opts.output, err)
	}

	jobs := make(chan string, len(inputs))
	for _, in := range inputs {
		jobs <- in
	}
	close(jobs)

	var done, failed atomic.Int64
	var mu sync.Mutex
	var errs []string

	pb := newProgressBar("convert", int64(len(inputs)))

	concurrency := opts.concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	var wg sync.WaitGroup
	for n := 0; n < concurrency; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for in := range jobs {
				out := outputPathFor(in, opts.output, true)
				if verbose {
					fmt.Fprintf(os.Stderr, "converting %s -> %s\n", in, out)
				}
				if err := convertFile(in, out, opts); err != nil {
					failed.Add(1)
					mu.Lock()
					errs = append(errs, fmt.Sprintf("%s: %v", in, err))
					mu.Unlock()
				} else {
					done.Add(1)
				}
				pb.Increment()
			}
		}()
	}
	wg.Wait()
	pb.Finish()

	fmt.Printf("%s %d succeeded, %d failed\n", color.CyanString("convert:"), done.Load(), failed.Load())
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, color.RedString("  "+e))
		}
		return fmt.Errorf("tgif convert: %d of %d files failed", failed.Load(), len(inputs))
	}
	return nil
}

func convertFile(input, output string, opts convertOptions) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	img, err := srcimage.Decode(data, input)
	if err != nil {
		return fmt.Errorf("decoding source image: %w", err)
	}

	quantized, err := quantize.Quantize(img, opts.maxColors)
	if err != nil {
		return fmt.Errorf("quantizing: %w", err)
	}

	enc := tgif.NewEncoder()
	if err := enc.PutScreenDesc(quantized.Width, quantized.Height, quantized.Palette, opts.sramLimit); err != nil {
		return fmt.Errorf("writing screen descriptor: %w", err)
	}
	for row := 0; row < quantized.Height; row++ {
		line := quantized.Indices[row*quantized.Width : (row+1)*quantized.Width]
		if err := enc.PutLine(line); err != nil {
			return fmt.Errorf("compressing row %d: %w", row, err)
		}
	}
	out, err := enc.Close()
	if err != nil {
		return fmt.Errorf("closing encoder: %w", err)
	}

	if err := os.WriteFile(output, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	return nil
}
