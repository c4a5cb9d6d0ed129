package main

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/urjaman/tgif/internal/fsutil"
	"github.com/urjaman/tgif/internal/tgif"
)

func newDecodeCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "decode <in.tgif> [out.png]",
		Short: "Decode a TGIF file to PNG",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output
			if out == "" && len(args) == 2 {
				out = args[1]
			}
			return runDecode(args[0], out)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG path (default: input with a .png extension)")
	return cmd
}

func runDecode(input, output string) error {
	if output == "" {
		output = input + ".png"
	}

	f, err := fsutil.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	data := f.Bytes()
	info, err := tgif.GetInfo(data, tgif.MaxDim, tgif.MaxDim, len(data))
	if err != nil {
		return fmt.Errorf("%s: %w (code %d)", input, err, tgif.CodeOf(err))
	}

	img := image.NewRGBA(image.Rect(0, 0, info.Width, info.Height))
	i := 0
	err = tgif.Decompress(info, func(idx byte) {
		r, g, b := info.Colors[idx].RGB888()
		img.Pix[i*4+0] = r
		img.Pix[i*4+1] = g
		img.Pix[i*4+2] = b
		img.Pix[i*4+3] = 0xFF
		i++
	})
	if err != nil {
		return fmt.Errorf("%s: decode failed: %w (code %d)", input, err, tgif.CodeOf(err))
	}

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	fmt.Printf("%s -> %s\n", input, output)
	return nil
}
