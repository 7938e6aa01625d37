package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"iconcloud/cloud"
)

var (
	background = colorful.Color{R: 0.04, G: 0.04, B: 0.06}
	hudStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(toTcell(background))
	dimStyle   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray).Background(toTcell(background))
	baseStyle  = tcell.StyleDefault.Background(toTcell(background))
)

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// iconStyle fades the label color into the background by its opacity.
func iconStyle(l cloud.Label, icon cloud.RenderedIcon) tcell.Style {
	fg := cloud.ResolveColor(l)
	faded := fg.BlendRgb(background, 1-icon.Opacity)
	style := baseStyle.Foreground(toTcell(faded))
	if icon.Depth > 0.9 {
		style = style.Bold(true)
	}
	return style
}

// iconText shows the full name for icons in front, the badge behind.
func iconText(l cloud.Label, icon cloud.RenderedIcon) string {
	if icon.Depth >= 0.75 {
		return runewidth.Truncate(l.Name, labelWidth, "…")
	}
	return l.Badge()
}

// drawText writes str starting at x and returns the column after it.
func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) int {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

// drawCentered writes str centered on x.
func drawCentered(s tcell.Screen, x, y int, style tcell.Style, str string) {
	drawText(s, x-runewidth.StringWidth(str)/2, y, style, str)
}
