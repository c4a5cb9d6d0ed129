package main

import (
	"testing"

	"github.com/urjaman/tgif/internal/tgif"
)

func TestClassifyPaletteBlackIsSpace(t *testing.T) {
	xt := classifyPalette(tgif.Palette{tgif.NewColor(0, 0, 0)})
	if xt[0] != ' ' {
		t.Errorf("got %q, want space for near-black", xt[0])
	}
}

func TestClassifyPaletteDominantRed(t *testing.T) {
	xt := classifyPalette(tgif.Palette{tgif.NewColor(31, 0, 0)})
	if xt[0] != 'R' {
		t.Errorf("got %q, want 'R' for a bright pure red", xt[0])
	}
}

func TestClassifyPaletteUnassignedIsBang(t *testing.T) {
	xt := classifyPalette(tgif.Palette{tgif.NewColor(0, 0, 0)})
	if xt[1] != '!' {
		t.Errorf("got %q, want '!' for an unused palette slot", xt[1])
	}
}
