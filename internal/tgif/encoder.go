package tgif

import "fmt"

// Encoder implements the TGIF LZW encoder. Unlike the reference C API
// (which opens a filename and writes directly to it), this Encoder
// accumulates its output in memory and hands back the finished byte
// slice from Close, matching the io-decoupled style Go libraries use
// (compress/lzw.NewWriter and friends) rather than threading a file
// handle through every call.
//
// Usage: PutScreenDesc once, then PutLine once per image row in order,
// then Close.
type Encoder struct {
	out  []byte
	hash *hashTable
	bw   bitWriter

	colorCount   int
	clearCode    int
	runningCode  int
	runningBits  uint
	initCodeBits uint
	maxCode1     int
	maxCodePoint int

	crntCode   int // noSuchCode sentinel = "first pixel of image, not seen yet"
	pixelsLeft int64
	hasScreen  bool
	closed     bool

	// MaxCodeUsed is the highest dictionary code this image ever reached,
	// kept for diagnostics. Decompress does not use it: it sizes its
	// dictionary from the header's SRAM limit.
	MaxCodeUsed int
}

// NewEncoder returns a ready-to-use Encoder.
func NewEncoder() *Encoder {
	return &Encoder{hash: newHashTable(), crntCode: noSuchCode}
}

// PutScreenDesc writes the image header, color table and CodeCount
// preamble, and must be called exactly once before any PutLine call.
// sramLimit is rounded down to a multiple of 256, per the header's
// 4-bit-shifted encoding.
func (e *Encoder) PutScreenDesc(width, height int, palette Palette, sramLimit int) error {
	if e.hasScreen {
		return newError(ErrHasScrnDscr, "screen descriptor already written")
	}
	if len(palette) == 0 {
		return newError(ErrNoColorMap, "palette is empty")
	}
	if len(palette) > MaxPaletteSize {
		return errTooMany("palette", len(palette), MaxPaletteSize)
	}
	if width < 1 || width > MaxDim || height < 1 || height > MaxDim {
		return fmt.Errorf("tgif: invalid dimensions %dx%d", width, height)
	}

	sramLimit &^= 0xFF
	if sramLimit <= 0 {
		return fmt.Errorf("tgif: sram limit %d rounds to zero", sramLimit)
	}
	if sramLimit > MaxSRAMLimit {
		sramLimit = MaxSRAMLimit
	}

	h := header{width: width, height: height, colorCount: len(palette), sramLimit: sramLimit}
	buf := h.serialize()
	e.out = append(e.out, buf[:]...)
	e.out = palette.appendTo(e.out)

	e.colorCount = len(palette)
	codeCount := byte(e.colorCount)
	if e.colorCount == MaxPaletteSize {
		codeCount = 0
	}
	e.out = append(e.out, codeCount)

	// dictBase (ClearCode+1) through MaxCodePoint is the run of codes the
	// SRAM budget can hold; SRAMLimit/4 entries at 4 bytes each (Prefix +
	// Suffix, as the decoder allocates them), so MaxCodePoint = dictBase +
	// dictSize - 1 = ColorCount + SRAMLimit/4. Must match GetInfo's/
	// Decompress's derivation exactly, or encoder and decoder disagree on
	// when to CLEAR.
	maxCodePoint := e.colorCount + sramLimit/4
	if maxCodePoint > LZMaxCode {
		maxCodePoint = LZMaxCode
	}
	e.maxCodePoint = maxCodePoint

	e.clearCode = e.colorCount
	e.runningCode = e.clearCode + 1
	e.runningBits = bitSize(e.runningCode)
	e.initCodeBits = e.runningBits
	e.maxCode1 = 1 << e.runningBits
	e.crntCode = noSuchCode
	e.bw = newBitWriter(&e.out)
	e.hash.clear()
	e.pixelsLeft = int64(width) * int64(height)
	e.hasScreen = true
	e.MaxCodeUsed = 0
	return nil
}

// emit writes code at the current RunningBits width, then escalates the
// code width if RunningCode has just crossed the current threshold.
// Grounded on tegif_lib.c's TEGifCompressOutput.
func (e *Encoder) emit(code int) {
	e.bw.put(code, e.runningBits)
	if e.runningCode >= e.maxCode1 && code <= LZMaxCode {
		e.runningBits++
		e.maxCode1 = 1 << e.runningBits
	}
}

// PutLine compresses one row of palette-index pixels. Rows must be
// supplied in raster order and together must total exactly
// width*height pixels. Grounded on tegif_lib.c's TEGifCompressLine /
// TEGifCompressOutput.
func (e *Encoder) PutLine(line []byte) error {
	if !e.hasScreen {
		return fmt.Errorf("tgif: PutScreenDesc not called")
	}
	if e.closed {
		return fmt.Errorf("tgif: encoder already closed")
	}
	if int64(len(line)) > e.pixelsLeft {
		return newError(ErrDataTooBig, "more pixels supplied than width*height")
	}
	if len(line) == 0 {
		return nil
	}
	e.pixelsLeft -= int64(len(line))

	i := 0
	var crnt int
	if e.crntCode == noSuchCode {
		crnt = int(line[0])
		i = 1
	} else {
		crnt = e.crntCode
	}

	for i < len(line) {
		pixel := line[i]
		i++
		key := uint32(crnt)<<8 | uint32(pixel)
		if code := e.hash.lookup(key); code >= 0 {
			crnt = code
			continue
		}

		e.emit(crnt)
		crnt = int(pixel)

		if e.runningCode >= e.maxCodePoint {
			if e.MaxCodeUsed < e.maxCodePoint {
				e.MaxCodeUsed = e.maxCodePoint
			}
			e.emit(e.clearCode)
			e.runningCode = e.clearCode + 1
			e.runningBits = e.initCodeBits
			e.maxCode1 = 1 << e.runningBits
			e.hash.clear()
		} else {
			e.hash.insert(key, e.runningCode)
			e.runningCode++
		}
	}

	e.crntCode = crnt

	if e.pixelsLeft == 0 {
		if e.MaxCodeUsed < e.runningCode-1 {
			e.MaxCodeUsed = e.runningCode - 1
		}
		e.emit(crnt)
		e.bw.flush()
	}
	return nil
}

// Close finalizes the stream and returns the complete container bytes
// (header, color table, CodeCount, packed code stream). It is an error
// to call Close before every declared pixel has been supplied via
// PutLine, mirroring TEGifCloseFile's "still has pending data" check.
func (e *Encoder) Close() ([]byte, error) {
	if e.closed {
		return nil, newError(ErrCloseFailed, "encoder already closed")
	}
	if e.pixelsLeft != 0 {
		return nil, newError(ErrCloseFailed, "image closed before all pixels were written")
	}
	e.closed = true
	e.hash = nil
	return e.out, nil
}
