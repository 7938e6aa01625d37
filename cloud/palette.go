// =======================
// cloud/palette.go
// =======================

package cloud

import (
	"crypto/sha256"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ResolveColor picks the display color of a label: its own color, then its
// category color, then the color of the category its name maps to, then a
// color derived from the name.
func ResolveColor(l Label) colorful.Color {
	if l.Color != "" {
		if c, err := colorful.Hex(l.Color); err == nil {
			return c
		}
	}
	if hex, ok := CategoryColor(l.Category); ok {
		c, _ := colorful.Hex(hex)
		return c
	}
	if cat, ok := CategoryOf(l.Name); ok {
		hex, _ := CategoryColor(cat)
		c, _ := colorful.Hex(hex)
		return c
	}
	return deriveColor(l.Name)
}

// deriveColor creates a deterministic, readable color from a name.
func deriveColor(name string) colorful.Color {
	h := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(name))))

	hue := float64(uint16(h[0])<<8|uint16(h[1])) / 65535.0 * 360.0 // [0, 360]
	chroma := 0.45 + (float64(h[2])/255.0)*0.25                     // [0.45, 0.70]
	light := 0.60 + (float64(h[3])/255.0)*0.15                      // [0.60, 0.75]

	return colorful.Hcl(hue, chroma, light).Clamped()
}
