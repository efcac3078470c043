package render

import (
	"image/color"

	"wireworld/internal/core"
)

// Palette maps the four Wireworld states to their classic colors: pale grey
// background, blue electron heads, red tails, yellow conductors.
var Palette = [4]color.RGBA{
	core.Empty:        {R: 0xd9, G: 0xd9, B: 0xd9, A: 0xff},
	core.ElectronHead: {R: 0x00, G: 0x00, B: 0xff, A: 0xff},
	core.ElectronTail: {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	core.Conductor:    {R: 0xff, G: 0xff, B: 0x00, A: 0xff},
}

// fillRGBA converts the whole cell buffer into RGBA pixels in buf using the
// Wireworld palette.
func fillRGBA(buf []byte, cells []core.State) {
	for i, s := range cells {
		writePixel(buf, i, s)
	}
}

// applyRGBA rewrites only the pixels named by the change set. cols is the
// grid width used to linearize coordinates.
func applyRGBA(buf []byte, cols int, cs core.ChangeSet) {
	for _, ch := range cs {
		writePixel(buf, ch.Row*cols+ch.Col, ch.State)
	}
}

func writePixel(buf []byte, i int, s core.State) {
	col := Palette[core.Empty]
	if int(s) < len(Palette) {
		col = Palette[s]
	}
	base := i * 4
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}
