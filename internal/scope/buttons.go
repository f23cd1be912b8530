package scope

import "image"

// Button is a labelled clickable rectangle in screen space.
type Button struct {
	Label string
	Rect  image.Rectangle
}

const (
	buttonW      = 140
	buttonH      = 24
	buttonTop    = 20
	buttonStride = 28
)

// Buttons stacks one button per label down the right edge of the canvas.
func (v Viewport) Buttons(labels ...string) []Button {
	out := make([]Button, len(labels))
	x := v.Width - buttonW
	for i, l := range labels {
		y := buttonTop + i*buttonStride
		out[i] = Button{Label: l, Rect: image.Rect(x, y, x+buttonW, y+buttonH)}
	}
	return out
}

// HitButton returns the index of the button under (x, y), or -1.
func HitButton(buttons []Button, x, y int) int {
	p := image.Pt(x, y)
	for i, b := range buttons {
		if p.In(b.Rect) {
			return i
		}
	}
	return -1
}
