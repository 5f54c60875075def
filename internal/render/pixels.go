package render

import "image/color"

var (
	// AliveColor is the default fill for live cells.
	AliveColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// DeadColor is the default fill for dead cells.
	DeadColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// fillBinaryRGBA converts boolean cell data into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []bool, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// fillTransitionRGBA marks cells that changed between prev and cur: births
// get born, deaths get died, everything else is transparent.
func fillTransitionRGBA(buf []byte, prev, cur []bool, born, died color.RGBA) {
	for i := range cur {
		base := i * 4
		col := color.RGBA{}
		switch {
		case i < len(prev) && !prev[i] && cur[i]:
			col = born
		case i < len(prev) && prev[i] && !cur[i]:
			col = died
		}
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
