package sheet

import "github.com/ingyamilmolinar/popwrap/core/layout"

// DefaultPresets is the preferred-size rotation cycled by "new sheet".
var DefaultPresets = []layout.Dimensions{
	{Rows: 10, Cols: 14},
	{Rows: 8, Cols: 12},
	{Rows: 12, Cols: 16},
}

// Rotation cycles through preferred sheet sizes. A custom size, once set,
// is used until the next call to Next.
type Rotation struct {
	presets []layout.Dimensions
	idx     int
	custom  *layout.Dimensions
}

// NewRotation copies presets; an empty list falls back to DefaultPresets.
func NewRotation(presets []layout.Dimensions) *Rotation {
	if len(presets) == 0 {
		presets = DefaultPresets
	}
	return &Rotation{presets: append([]layout.Dimensions(nil), presets...)}
}

func (r *Rotation) Current() layout.Dimensions {
	if r.custom != nil {
		return *r.custom
	}
	return r.presets[r.idx]
}

// Next advances to the following preset, wrapping around, and returns it.
func (r *Rotation) Next() layout.Dimensions {
	r.custom = nil
	r.idx = (r.idx + 1) % len(r.presets)
	return r.presets[r.idx]
}

// SetCustom overrides the current preferred size.
func (r *Rotation) SetCustom(d layout.Dimensions) {
	r.custom = &d
}

// Index is the position of the current preset in the rotation.
func (r *Rotation) Index() int { return r.idx }
