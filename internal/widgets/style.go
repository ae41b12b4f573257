package widgets

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Style holds the per-state colors shared by the widget set.
type Style struct {
	Normal   rl.Color
	Hover    rl.Color
	Selected rl.Color
	Active   rl.Color

	// Surface allocates a drawing surface for generated label textures.
	// nil skips label generation (headless use). A surface that comes back
	// without a GPU id fails widget construction.
	Surface func(width, height int32) rl.RenderTexture2D
}

func DefaultStyle() Style {
	return Style{
		Normal:   rl.NewColor(60, 60, 70, 255),
		Hover:    rl.NewColor(80, 80, 95, 255),
		Selected: rl.NewColor(120, 170, 255, 255),
		Active:   rl.NewColor(235, 170, 50, 255),
	}
}

// acquireSurface builds the label surface for a widget, failing fast when
// the drawing surface cannot be produced: the affordance cannot exist
// without it, so the widget must not half-construct.
func acquireSurface(style Style, name string, width, height int32) (rl.RenderTexture2D, bool, error) {
	if style.Surface == nil {
		return rl.RenderTexture2D{}, false, nil
	}
	tex := style.Surface(width, height)
	if tex.ID == 0 {
		return rl.RenderTexture2D{}, false, fmt.Errorf("widget %q: acquire label surface %dx%d", name, width, height)
	}
	return tex, true, nil
}
