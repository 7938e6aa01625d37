// =======================
// cloud/frame.go
// =======================

package cloud

import "slices"

// PaintOrder returns the icons sorted far to near so later entries paint on
// top. Ties keep label order.
func (f Frame) PaintOrder() []RenderedIcon {
	out := slices.Clone(f.Icons)
	slices.SortStableFunc(out, func(a, b RenderedIcon) int {
		switch {
		case a.StackOrder != b.StackOrder:
			return a.StackOrder - b.StackOrder
		case a.Depth < b.Depth:
			return -1
		case a.Depth > b.Depth:
			return 1
		}
		return 0
	})
	return out
}
