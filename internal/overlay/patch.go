package overlay

import "github.com/spf13/cast"

// Patch is a partial settings update as decoded from a JSON body. Keys are
// applied by explicit named lookup so stray keys never leak into a
// configuration; unknown keys are rejected.
type Patch map[string]interface{}

// ApplyPatch merges a partial update into the settings and returns the
// result. The receiver is not modified.
func (s OverlaySettings) ApplyPatch(p Patch) (OverlaySettings, error) {
	out := s
	for key, raw := range p {
		switch key {
		case "textSize":
			v, err := cast.ToIntE(raw)
			if err != nil {
				return s, validationErr(key, "expected integer, got %v", raw)
			}
			if v < MinTextSize || v > MaxTextSize {
				return s, validationErr(key, "must be between %d and %d, got %d", MinTextSize, MaxTextSize, v)
			}
			out.TextSize = v
		case "textColor":
			out.TextColor = cast.ToString(raw)
		case "enableBackground":
			v, err := cast.ToBoolE(raw)
			if err != nil {
				return s, validationErr(key, "expected boolean, got %v", raw)
			}
			out.EnableBackground = v
		case "dateFormat":
			out.DateFormat = cast.ToString(raw)
		case "unit":
			v := cast.ToString(raw)
			if v != UnitCelsius && v != UnitFahrenheit {
				return s, validationErr(key, "must be %q or %q", UnitCelsius, UnitFahrenheit)
			}
			out.Unit = v
		case "display":
			v := cast.ToString(raw)
			if v != WeatherTempOnly && v != WeatherConditionsOnly && v != WeatherBoth {
				return s, validationErr(key, "unknown display mode %q", v)
			}
			out.Display = v
		case "leadingZeros":
			v, err := cast.ToBoolE(raw)
			if err != nil {
				return s, validationErr(key, "expected boolean, got %v", raw)
			}
			out.LeadingZeros = v
		case "hidePrefix":
			v, err := cast.ToBoolE(raw)
			if err != nil {
				return s, validationErr(key, "expected boolean, got %v", raw)
			}
			out.HidePrefix = v
		case "customText":
			out.CustomText = cast.ToString(raw)
		case "imageUrl":
			out.ImageURL = cast.ToString(raw)
		case "imageScale":
			v, err := cast.ToIntE(raw)
			if err != nil {
				return s, validationErr(key, "expected integer, got %v", raw)
			}
			if v < MinImageScale || v > MaxImageScale {
				return s, validationErr(key, "must be between %d and %d, got %d", MinImageScale, MaxImageScale, v)
			}
			out.ImageScale = v
		case "assetId":
			out.AssetID = cast.ToString(raw)
		case "isUploading":
			v, err := cast.ToBoolE(raw)
			if err != nil {
				return s, validationErr(key, "expected boolean, got %v", raw)
			}
			out.IsUploading = v
		default:
			return s, validationErr(key, "unknown settings key")
		}
	}
	return out, nil
}

// ApplyPatch merges a partial update into the shared settings and returns
// the result. The receiver is not modified.
func (g GlobalSettings) ApplyPatch(p Patch) (GlobalSettings, error) {
	out := g
	for key, raw := range p {
		switch key {
		case "opacity", "dropShadow", "backgroundOpacity":
			v, err := cast.ToIntE(raw)
			if err != nil {
				return g, validationErr(key, "expected integer, got %v", raw)
			}
			if v < 0 || v > 100 {
				return g, validationErr(key, "must be between 0 and 100, got %d", v)
			}
			switch key {
			case "opacity":
				out.Opacity = v
			case "dropShadow":
				out.DropShadow = v
			case "backgroundOpacity":
				out.BackgroundOpacity = v
			}
		case "xMargin", "yMargin":
			v, err := cast.ToIntE(raw)
			if err != nil {
				return g, validationErr(key, "expected integer, got %v", raw)
			}
			if v < 0 {
				return g, validationErr(key, "must not be negative, got %d", v)
			}
			if key == "xMargin" {
				out.XMargin = v
			} else {
				out.YMargin = v
			}
		case "font":
			v := cast.ToString(raw)
			if !validFont(v) {
				return g, validationErr(key, "unsupported font family %q", v)
			}
			out.Font = v
		case "backgroundColor":
			out.BackgroundColor = cast.ToString(raw)
		case "fillColor":
			out.FillColor = cast.ToString(raw)
		default:
			return g, validationErr(key, "unknown settings key")
		}
	}
	return out, nil
}
