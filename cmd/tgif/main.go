// Command tgif converts images to and from the TGIF raster format.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:   "tgif",
		Short: "Convert images to and from the TGIF raster format",
		Long: `tgif converts GIF/PNG/JPEG/WebP/BMP/TIFF images into the TGIF format
(RGB565 colors, LZW-compressed, sized to fit a microcontroller's SRAM), and
inspects or decodes .tgif files back out.`,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose progress output")

	root.AddCommand(newConvertCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newDecodeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
