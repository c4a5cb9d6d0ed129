package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/urjaman/tgif/internal/fsutil"
	"github.com/urjaman/tgif/internal/tgif"
)

func newInfoCmd() *cobra.Command {
	var thumbnail bool
	cmd := &cobra.Command{
		Use:   "info <file.tgif>",
		Short: "Print a TGIF file's header and an optional colorized thumbnail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0], thumbnail)
		},
	}
	cmd.Flags().BoolVarP(&thumbnail, "thumbnail", "t", true, "print a colorized ASCII thumbnail")
	return cmd
}

func runInfo(path string, thumbnail bool) error {
	f, err := fsutil.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	data := f.Bytes()
	info, err := tgif.GetInfo(data, tgif.MaxDim, tgif.MaxDim, len(data))
	if err != nil {
		return fmt.Errorf("%s: %w (code %d)", path, err, tgif.CodeOf(err))
	}

	fmt.Printf("%dx%d image, %d colors, %d bytes of SRAM required to decode (file is %d bytes)\n",
		info.Width, info.Height, info.ColorCount, info.SRAMLimit, len(data))

	if !thumbnail {
		return nil
	}

	xt := classifyPalette(info.Colors)
	col := 0
	err = tgif.Decompress(info, func(idx byte) {
		printClassified(xt[idx])
		col++
		if col == info.Width {
			fmt.Println()
			col = 0
		}
	})
	if err != nil {
		return fmt.Errorf("%s: decode failed: %w (code %d)", path, err, tgif.CodeOf(err))
	}
	return nil
}

// classifyPalette assigns each palette entry a single printable
// character, the same coarse hue/brightness buckets testdec.c's MakeXT
// uses (space for near-black, R/G/B for a dominant channel, lowercase
// for dim, uppercase for bright, W/w for near-white, X/x otherwise).
func classifyPalette(colors tgif.Palette) []byte {
	xt := make([]byte, 256)
	for i := range xt {
		xt[i] = '!'
	}
	for n, c := range colors {
		r, g, b := c.R(), c.G()>>1, c.B() // g folded back to 5 bits, matching testdec.c's (col>>6)&0x1F
		var ch byte
		switch {
		case r < 7 && g < 7 && b < 7:
			ch = ' '
		case r > g && r > b:
			if r > 16 {
				ch = 'R'
			} else {
				ch = 'r'
			}
		case g > r && g > b:
			if g > 16 {
				ch = 'G'
			} else {
				ch = 'g'
			}
		case b > r && b > g:
			if b > 16 {
				ch = 'B'
			} else {
				ch = 'b'
			}
		case r > 24 && g > 24 && b > 24:
			if g > 29 {
				ch = 'W'
			} else {
				ch = 'w'
			}
		default:
			if g > 16 {
				ch = 'X'
			} else {
				ch = 'x'
			}
		}
		xt[n] = ch
	}
	return xt
}

func printClassified(ch byte) {
	switch ch {
	case 'R', 'r':
		fmt.Print(color.RedString(string(ch)))
	case 'G', 'g':
		fmt.Print(color.GreenString(string(ch)))
	case 'B', 'b':
		fmt.Print(color.BlueString(string(ch)))
	case 'W', 'w':
		fmt.Print(color.WhiteString(string(ch)))
	default:
		fmt.Print(string(ch))
	}
}
