package tgif

import "fmt"

// Info is the parsed TGIF header together with a borrowed (not copied)
// view into the source buffer's code-stream region, mirroring the
// "parse the header, then decode straight out of the caller's buffer"
// design tdgif_lib.c uses via its TGifInfoType.
type Info struct {
	Width      int
	Height     int
	SRAMLimit  int
	ColorCount int
	Colors     Palette

	// MaxSz is the remaining byte budget, starting at the CodeCount
	// preamble byte, available to the code stream.
	MaxSz int

	data []byte // buf[HeaderSize+colorTableSize:], borrowed from the caller
}

// GetInfo parses a TGIF container out of buf. maxW/maxH bound the
// decodable image size (a caller-supplied guard against absurd
// dimensions in a corrupt or hostile header); maxSz is the number of
// bytes in buf that actually belong to this image. Grounded on
// tdgif_lib.c's TDGifGetInfo.
func GetInfo(buf []byte, maxW, maxH, maxSz int) (*Info, error) {
	if maxSz < HeaderSize+1 || len(buf) < HeaderSize+1 {
		return nil, newError(ErrMaxSz, "buffer too small for a TGIF header")
	}

	h, err := parseHeader(buf)
	if err != nil {
		return nil, err
	}
	if h.width > maxW || h.height > maxH {
		return nil, newError(ErrTooBig, fmt.Sprintf("image %dx%d exceeds the %dx%d limit", h.width, h.height, maxW, maxH))
	}

	colorTableSize := h.colorCount * 2
	if maxSz < HeaderSize+colorTableSize+1 {
		return nil, newError(ErrMaxSz, "buffer too small for the color table")
	}

	colors, err := parsePalette(buf[HeaderSize:], h.colorCount)
	if err != nil {
		return nil, err
	}

	return &Info{
		Width:      h.width,
		Height:     h.height,
		SRAMLimit:  h.sramLimit,
		ColorCount: h.colorCount,
		Colors:     colors,
		MaxSz:      maxSz - (HeaderSize + colorTableSize),
		data:       buf[HeaderSize+colorTableSize:],
	}, nil
}

// Decompress LZW-decodes info's code stream, calling output once per
// pixel in raster order (width*height calls total). Grounded end to end
// on tdgif_lib.c's TDGifDecompress / TDGifGetPrefixChar, with one
// deliberate deviation from the reference: the code-width escalation
// step runs after the CLEAR-code check rather than before it. Both
// orderings leave identical state once a CLEAR is processed (CLEAR
// always resets RunningCode/RunningBits outright), so this only changes
// which line of code looks responsible for the reset, not any decoded
// byte.
func Decompress(info *Info, output func(byte)) error {
	if len(info.data) < 1 {
		return newError(ErrMaxSz, "missing CodeCount preamble")
	}
	codeCount := int(info.data[0])
	if codeCount == 0 {
		codeCount = MaxPaletteSize
	}
	if codeCount != info.ColorCount {
		return newError(ErrImageDefect, "CodeCount does not match the color table size")
	}

	dictBase := codeCount + 1
	dictSize := info.SRAMLimit / 4
	if dictBase+dictSize-1 > LZMaxCode {
		dictSize = LZMaxCode - dictBase + 1
	}
	if dictSize < 1 {
		return newError(ErrImageDefect, "SRAM limit leaves no room for a dictionary")
	}
	maxCodePoint := dictBase + dictSize - 1
	maxCodeBits := bitSize(maxCodePoint)

	clearCode := codeCount
	runningCode := codeCount + 1
	initCodeBits := bitSize(runningCode)
	runningBits := initCodeBits
	maxCode1 := 1 << runningBits

	br := newBitReader(info.data, info.MaxSz)
	dict := newDecoderDict(dictSize, dictBase)

	lastCode := noSuchCode
	pixelCount := int64(info.Width) * int64(info.Height)
	var i int64

	for i < pixelCount {
		code, err := br.get(runningBits)
		if err != nil {
			return err
		}

		if code == clearCode {
			dict.reset()
			runningCode = codeCount + 1
			runningBits = initCodeBits
			maxCode1 = 1 << runningBits
			lastCode = noSuchCode
			continue
		}

		if runningCode < maxCodePoint+2 {
			runningCode++
			if runningCode > maxCode1 && runningBits < maxCodeBits {
				maxCode1 <<= 1
				runningBits++
			}
		}

		var crntPrefix int
		if code < clearCode {
			crntPrefix = code
		} else {
			if code > maxCodePoint {
				return newError(ErrImageDefect, "code exceeds the current dictionary size")
			}
			idx := code - dictBase
			if dict.prefix[idx] == noSuchCode {
				crntPrefix = lastCode
				tracedFrom := code
				if code == runningCode-2 {
					tracedFrom = lastCode
				}
				firstPixel, err := getPrefixChar(dict, tracedFrom, clearCode, maxCodePoint)
				if err != nil {
					return err
				}
				if slot, ok := instSlot(runningCode, dictBase, dictSize); ok {
					dict.suffix[slot] = byte(firstPixel)
				}
				dict.stack[dict.stackPtr] = byte(firstPixel)
				dict.stackPtr++
			} else {
				crntPrefix = code
			}
		}

		for dict.stackPtr < dictSize && crntPrefix > clearCode && crntPrefix <= maxCodePoint {
			dict.stack[dict.stackPtr] = dict.suffix[crntPrefix-dictBase]
			dict.stackPtr++
			crntPrefix = dict.prefix[crntPrefix-dictBase]
		}
		if dict.stackPtr >= dictSize || crntPrefix > maxCodePoint || crntPrefix < 0 {
			return newError(ErrImageDefect, "dictionary chain exceeded its bounds")
		}

		output(byte(crntPrefix))
		i++
		for dict.stackPtr != 0 && i < pixelCount {
			dict.stackPtr--
			output(dict.stack[dict.stackPtr])
			i++
		}

		if slot, ok := instSlot(runningCode, dictBase, dictSize); ok && lastCode != noSuchCode && dict.prefix[slot] == noSuchCode {
			dict.prefix[slot] = lastCode
			tracedFrom := code
			if code == runningCode-2 {
				tracedFrom = lastCode
			}
			firstPixel, err := getPrefixChar(dict, tracedFrom, clearCode, maxCodePoint)
			if err != nil {
				return err
			}
			dict.suffix[slot] = byte(firstPixel)
		}

		lastCode = code
	}

	return nil
}

// instSlot returns the dictionary slot the entry-in-progress
// (RunningCode-2) occupies, and whether that slot is currently valid.
// Right after a CLEAR, RunningCode-2 can fall below dictBase (the
// just-reset dictionary has no in-progress entry yet); the reference C
// never guards this because its arrays happen not to be touched in that
// state, but an explicit bounds check costs nothing and keeps a
// corrupted stream from ever indexing outside the slice.
func instSlot(runningCode, dictBase, dictSize int) (int, bool) {
	idx := runningCode - 2 - dictBase
	return idx, idx >= 0 && idx < dictSize
}

// getPrefixChar walks code's prefix chain back to its literal pixel.
// Grounded on tdgif_lib.c's TDGifGetPrefixChar; bounded to LZMaxCode+1
// iterations so a cyclic or malformed chain cannot loop forever.
func getPrefixChar(dict *decoderDict, code, clearCode, maxCodePoint int) (int, error) {
	for i := 0; code > clearCode && i <= LZMaxCode; i++ {
		if code > maxCodePoint || code < 0 {
			return 0, newError(ErrImageDefect, "prefix chain reached an out-of-range code")
		}
		code = dict.prefix[code-dict.dictBase]
	}
	return code, nil
}
