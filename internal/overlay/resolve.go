package overlay

// ShadowSpec describes the drop shadow applied to an overlay. Offset and
// blur grow with the global dropShadow value; alpha is a fixed visual
// weight.
type ShadowSpec struct {
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
	Blur    float64 `json:"blur"`
	Alpha   float64 `json:"alpha"`
}

// shadowAlpha is the fixed shadow opacity used whenever dropShadow > 0.
const shadowAlpha = 0.8

// RenderStyle is the effective render descriptor for one overlay instance
// after the settings cascade: type default < item override, with opacity,
// shadow, and font always taken from the shared settings.
type RenderStyle struct {
	Opacity           float64     `json:"opacity"`
	FontFamily        string      `json:"fontFamily"`
	TextSize          int         `json:"textSize"`
	TextColor         string      `json:"textColor"`
	Background        bool        `json:"background"`
	BackgroundColor   string      `json:"backgroundColor"`
	BackgroundOpacity float64     `json:"backgroundOpacity"`
	Shadow            *ShadowSpec `json:"shadow,omitempty"`
}

// Resolve computes the effective render descriptor for item under the
// shared settings. Resolution is by explicit named lookup with a fallback
// to the type defaults for absent keys; it never depends on map iteration
// order and is deterministic for identical inputs.
func Resolve(global GlobalSettings, item OverlayItem) RenderStyle {
	def := DefaultSettings(item.Type)

	size := item.Settings.TextSize
	if size == 0 {
		size = def.TextSize
	}
	color := item.Settings.TextColor
	if color == "" {
		color = def.TextColor
	}

	style := RenderStyle{
		Opacity:           float64(global.Opacity) / 100,
		FontFamily:        global.Font,
		TextSize:          size,
		TextColor:         color,
		Background:        item.Settings.EnableBackground,
		BackgroundColor:   global.BackgroundColor,
		BackgroundOpacity: float64(global.BackgroundOpacity) / 100,
	}

	if global.DropShadow > 0 {
		d := float64(global.DropShadow)
		style.Shadow = &ShadowSpec{
			OffsetX: d / 25,
			OffsetY: d / 25,
			Blur:    d / 10,
			Alpha:   shadowAlpha,
		}
	}
	return style
}
