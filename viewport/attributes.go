// SPDX-License-Identifier: Unlicense OR MIT

package viewport

import (
	"fmt"

	"gioui.org/pageview/f32"
)

// Attributes are the viewport properties declared by a page.
type Attributes struct {
	// LayoutSize is the logical size the page is laid out for. An
	// empty LayoutSize means the attributes are not yet known.
	LayoutSize f32.Point
	// InitialScale is the scale to show the page at after it is
	// loaded. A negative InitialScale requests the page to be
	// scaled to fit the viewport.
	InitialScale float32
	MinimumScale float32
	MaximumScale float32
	// UserScalable reports whether the user may change the scale.
	UserScalable bool
}

// defaultAttributes are used until a page declares its own. They
// keep the scale at 1 if the contents is rendered before the
// attributes arrive.
var defaultAttributes = Attributes{
	InitialScale: 1,
	MinimumScale: 1,
	MaximumScale: 1,
}

// valid reports whether the attributes are known and describe a
// consistent scale range.
func (a Attributes) valid() bool {
	if a.LayoutSize.X <= 0 || a.LayoutSize.Y <= 0 {
		return false
	}
	return a.MinimumScale > 0 && a.MinimumScale <= a.MaximumScale
}

// restrictToInitialScale collapses the scale range to the initial
// scale if the user may not change the scale.
func (a *Attributes) restrictToInitialScale() {
	if !a.UserScalable {
		a.MinimumScale = a.InitialScale
		a.MaximumScale = a.InitialScale
	}
}

func (a Attributes) String() string {
	return fmt.Sprintf("layout %v scale %g [%g, %g] scalable %v",
		a.LayoutSize, a.InitialScale, a.MinimumScale, a.MaximumScale, a.UserScalable)
}
