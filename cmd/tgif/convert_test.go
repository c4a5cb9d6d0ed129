package main

import "testing"

func TestParseLegacyPositionalTwoArgs(t *testing.T) {
	cmd := newConvertCmd()
	in, out, sram, ok := parseLegacyPositional(cmd, []string{"in.gif", "out.bin"})
	if !ok || in != "in.gif" || out != "out.bin" || sram != 4096 {
		t.Errorf("got (%q, %q, %d, %v), want (in.gif, out.bin, 4096, true)", in, out, sram, ok)
	}
}

func TestParseLegacyPositionalThreeArgsWithSRAM(t *testing.T) {
	cmd := newConvertCmd()
	in, out, sram, ok := parseLegacyPositional(cmd, []string{"in.gif", "out.bin", "3072"})
	if !ok || in != "in.gif" || out != "out.bin" || sram != 3072 {
		t.Errorf("got (%q, %q, %d, %v), want (in.gif, out.bin, 3072, true)", in, out, sram, ok)
	}
}

func TestParseLegacyPositionalRejectsExplicitOutputFlag(t *testing.T) {
	cmd := newConvertCmd()
	if err := cmd.Flags().Set("output", "dir/"); err != nil {
		t.Fatalf("setting --output: %v", err)
	}
	_, _, _, ok := parseLegacyPositional(cmd, []string{"a.gif", "b.gif", "c.gif"})
	if ok {
		t.Errorf("expected batch-mode fallthrough once --output is explicitly set")
	}
}

func TestParseLegacyPositionalFallsThroughOnNonNumericThirdArg(t *testing.T) {
	cmd := newConvertCmd()
	_, _, _, ok := parseLegacyPositional(cmd, []string{"a.gif", "b.gif", "c.gif"})
	if ok {
		t.Errorf("expected fallthrough to batch mode when third arg isn't a SRAM integer")
	}
}

func TestOutputPathForSingleDefaultsToSiblingTgif(t *testing.T) {
	got := outputPathFor("/tmp/photo.png", "", false)
	want := "/tmp/photo.tgif"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestOutputPathForSingleExplicit(t *testing.T) {
	got := outputPathFor("/tmp/photo.png", "/out/custom.tgif", false)
	if got != "/out/custom.tgif" {
		t.Errorf("got %q, want explicit output path unchanged", got)
	}
}

func TestOutputPathForBatchJoinsDirectory(t *testing.T) {
	got := outputPathFor("/in/a/photo.png", "/out", true)
	want := "/out/photo.tgif"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
