package ui

import (
	"bytes"
	"image/png"
	"testing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestIconRendersDistinctStates(t *testing.T) {
	seen := make(map[string]bool)

	for _, active := range []bool{false, true} {
		for _, dark := range []bool{false, true} {
			data := renderPNGForState(active, dark)
			if len(data) == 0 {
				t.Fatalf("empty icon for active=%v dark=%v", active, dark)
			}
			if !bytes.HasPrefix(data, pngMagic) {
				t.Fatalf("icon for active=%v dark=%v is not a PNG", active, dark)
			}
			seen[string(data)] = true
		}
	}

	if len(seen) != 4 {
		t.Errorf("expected 4 distinct icons, got %d", len(seen))
	}
}

func TestIconDecodes(t *testing.T) {
	img, err := png.Decode(bytes.NewReader(renderPNGForState(true, false)))
	if err != nil {
		t.Fatalf("icon does not decode as PNG: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != iconSize || bounds.Dy() != iconSize {
		t.Errorf("icon is %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), iconSize, iconSize)
	}
}

func TestWrapICO(t *testing.T) {
	pngData := renderPNGForState(true, true)
	ico := wrapICO(pngData)

	if len(ico) != 6+16+len(pngData) {
		t.Fatalf("ico length = %d, want %d", len(ico), 6+16+len(pngData))
	}

	// ICONDIR type and count.
	if ico[2] != 1 || ico[4] != 1 {
		t.Errorf("unexpected ICONDIR header: % x", ico[:6])
	}

	// The embedded PNG starts right after the directory.
	if !bytes.HasPrefix(ico[22:], pngMagic) {
		t.Error("ico payload is not the PNG data")
	}
}

// renderPNGForState mirrors the palette selection in Icon without the
// per-OS container.
func renderPNGForState(active, dark bool) []byte {
	fill := pausedLight
	switch {
	case active && dark:
		fill = activeDark
	case active:
		fill = activeLight
	case dark:
		fill = pausedDark
	}
	return renderPNG(fill)
}
