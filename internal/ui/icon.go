package ui

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"runtime"
)

const iconSize = 22

// Palette for the tray icon, adjusted for light and dark menu bars.
var (
	activeLight = color.NRGBA{R: 0x2E, G: 0xA0, B: 0x44, A: 0xFF}
	activeDark  = color.NRGBA{R: 0x73, G: 0xF5, B: 0x9F, A: 0xFF}
	pausedLight = color.NRGBA{R: 0x8A, G: 0x8A, B: 0x8A, A: 0xFF}
	pausedDark  = color.NRGBA{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF}
)

// Icon renders the tray icon for the given state. Windows expects ICO
// data; everywhere else a PNG is fine.
func Icon(active, darkMode bool) []byte {
	fill := pausedLight
	switch {
	case active && darkMode:
		fill = activeDark
	case active:
		fill = activeLight
	case darkMode:
		fill = pausedDark
	}

	data := renderPNG(fill)
	if runtime.GOOS == "windows" {
		return wrapICO(data)
	}
	return data
}

// renderPNG draws a filled circle with a soft edge.
func renderPNG(fill color.NRGBA) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, iconSize, iconSize))

	center := float64(iconSize) / 2
	radius := center - 2

	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			dist := dx*dx + dy*dy

			switch {
			case dist <= radius*radius:
				img.SetNRGBA(x, y, fill)
			case dist <= (radius+1)*(radius+1):
				soft := fill
				soft.A = 0x80
				img.SetNRGBA(x, y, soft)
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil
	}
	return buf.Bytes()
}

// wrapICO wraps PNG data in a single-image ICO container. Windows accepts
// PNG-compressed entries for icons since Vista.
func wrapICO(pngData []byte) []byte {
	var buf bytes.Buffer

	// ICONDIR: reserved, type 1 (icon), count 1.
	binary.Write(&buf, binary.LittleEndian, uint16(0))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint16(1))

	// ICONDIRENTRY.
	buf.WriteByte(iconSize) // width
	buf.WriteByte(iconSize) // height
	buf.WriteByte(0)        // colors in palette
	buf.WriteByte(0)        // reserved
	binary.Write(&buf, binary.LittleEndian, uint16(1))            // color planes
	binary.Write(&buf, binary.LittleEndian, uint16(32))           // bits per pixel
	binary.Write(&buf, binary.LittleEndian, uint32(len(pngData))) // image size
	binary.Write(&buf, binary.LittleEndian, uint32(6+16))         // image offset

	buf.Write(pngData)
	return buf.Bytes()
}
