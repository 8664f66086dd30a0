package tui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// halfBlock is drawn with the upper pixel as foreground and the lower
// pixel as background, so one terminal cell shows two pixels.
const halfBlock = "▀"

// RenderCover draws img as columns terminal cells wide using half blocks.
//
// The image is sampled with nearest-neighbour; the row count keeps the
// aspect ratio, rounded up to an even number of pixel rows.
func RenderCover(img image.Image, columns int) string {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return ""
	}

	if columns < 1 || columns > w {
		columns = w
	}
	rows := (columns*h + w - 1) / w
	if rows%2 == 1 {
		rows++
	}

	sample := func(col, row int) color.Color {
		x := bounds.Min.X + col*w/columns
		y := bounds.Min.Y + min(row*h/rows, h-1)
		return img.At(x, y)
	}

	var b strings.Builder
	for row := 0; row < rows; row += 2 {
		if row > 0 {
			b.WriteString("\n")
		}
		for col := 0; col < columns; col++ {
			style := lipgloss.NewStyle().
				Foreground(hexColor(sample(col, row))).
				Background(hexColor(sample(col, row+1)))
			b.WriteString(style.Render(halfBlock))
		}
	}
	return b.String()
}

func hexColor(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
