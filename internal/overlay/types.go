package overlay

// OverlayType identifies one of the closed set of overlay kinds. Adding a
// kind means adding a branch in the registry and one in the content
// resolver; the set is not runtime-extensible.
type OverlayType string

const (
	TypeWeather       OverlayType = "weather"
	TypeDateTime      OverlayType = "date_time"
	TypeFrameNumber   OverlayType = "frame_number"
	TypeCustomText    OverlayType = "custom_text"
	TypeTimelapseName OverlayType = "timelapse_name"
	TypeDayNumber     OverlayType = "day_number"
	TypeWatermark     OverlayType = "watermark"
)

// Temperature units for the weather overlay.
const (
	UnitCelsius    = "Celsius"
	UnitFahrenheit = "Fahrenheit"
)

// Display modes for the weather overlay.
const (
	WeatherTempOnly       = "temp_only"
	WeatherConditionsOnly = "conditions_only"
	WeatherBoth           = "both"
)

// Text size and image scale bounds.
const (
	MinTextSize   = 8
	MaxTextSize   = 72
	MinImageScale = 10
	MaxImageScale = 200
)

// OverlaySettings is the closed union of per-type settings keys. Zero
// values mean "not set"; resolution falls back to the type defaults.
// Which fields are meaningful depends on OverlayItem.Type.
type OverlaySettings struct {
	// Common to all types.
	TextSize         int    `json:"textSize,omitempty"`
	TextColor        string `json:"textColor,omitempty"`
	EnableBackground bool   `json:"enableBackground,omitempty"`

	// date_time
	DateFormat string `json:"dateFormat,omitempty"`

	// weather
	Unit    string `json:"unit,omitempty"`
	Display string `json:"display,omitempty"`

	// frame_number, day_number
	LeadingZeros bool `json:"leadingZeros,omitempty"`
	HidePrefix   bool `json:"hidePrefix,omitempty"`

	// custom_text
	CustomText string `json:"customText,omitempty"`

	// watermark
	ImageURL    string `json:"imageUrl,omitempty"`
	ImageScale  int    `json:"imageScale,omitempty"`
	AssetID     string `json:"assetId,omitempty"`
	IsUploading bool   `json:"isUploading,omitempty"`
}

// GlobalSettings carries the visual parameters shared by every overlay in a
// composition. Opacity, drop shadow, and font are never overridable per
// item.
type GlobalSettings struct {
	Opacity           int    `json:"opacity"`
	DropShadow        int    `json:"dropShadow"`
	Font              string `json:"font"`
	XMargin           int    `json:"xMargin"`
	YMargin           int    `json:"yMargin"`
	BackgroundColor   string `json:"backgroundColor"`
	BackgroundOpacity int    `json:"backgroundOpacity"`
	FillColor         string `json:"fillColor"`
}

// Fonts returns the supported font family names.
func Fonts() []string {
	return []string{"Arial", "Helvetica", "Courier New", "Times New Roman", "Roboto", "Monaco"}
}

func validFont(name string) bool {
	for _, f := range Fonts() {
		if f == name {
			return true
		}
	}
	return false
}

// DefaultGlobalSettings returns the baseline shared settings for a new
// composition.
func DefaultGlobalSettings() GlobalSettings {
	return GlobalSettings{
		Opacity:           100,
		DropShadow:        0,
		Font:              "Arial",
		XMargin:           24,
		YMargin:           24,
		BackgroundColor:   "#000000",
		BackgroundOpacity: 50,
		FillColor:         "#FFFFFF",
	}
}

// Validate checks the shared settings against their declared ranges.
func (g GlobalSettings) Validate() error {
	if g.Opacity < 0 || g.Opacity > 100 {
		return validationErr("opacity", "must be between 0 and 100, got %d", g.Opacity)
	}
	if g.DropShadow < 0 || g.DropShadow > 100 {
		return validationErr("dropShadow", "must be between 0 and 100, got %d", g.DropShadow)
	}
	if g.BackgroundOpacity < 0 || g.BackgroundOpacity > 100 {
		return validationErr("backgroundOpacity", "must be between 0 and 100, got %d", g.BackgroundOpacity)
	}
	if g.XMargin < 0 {
		return validationErr("xMargin", "must not be negative, got %d", g.XMargin)
	}
	if g.YMargin < 0 {
		return validationErr("yMargin", "must not be negative, got %d", g.YMargin)
	}
	if !validFont(g.Font) {
		return validationErr("font", "unsupported font family %q", g.Font)
	}
	return nil
}

// OverlayItem is one positioned overlay within a composition.
type OverlayItem struct {
	ID       string          `json:"id"`
	Type     OverlayType     `json:"type"`
	Position Position        `json:"position"`
	Enabled  bool            `json:"enabled"`
	Settings OverlaySettings `json:"settings"`
}

// OverlayConfig is the composition document: shared settings plus the
// ordered set of positioned overlays. It is the unit of persistence and
// the value handed to the external renderer. At most one item occupies a
// given position.
type OverlayConfig struct {
	GlobalSettings GlobalSettings `json:"globalSettings"`
	OverlayItems   []OverlayItem  `json:"overlayItems"`
}

// Validate checks the whole composition: shared settings ranges, item
// types and positions, per-item setting ranges, and the one-item-per-
// position invariant.
func (c OverlayConfig) Validate() error {
	if err := c.GlobalSettings.Validate(); err != nil {
		return err
	}
	seen := make(map[Position]bool, len(c.OverlayItems))
	for _, item := range c.OverlayItems {
		if !item.Position.Valid() {
			return validationErr("position", "unknown position %q", item.Position)
		}
		if !ValidType(item.Type) {
			return validationErr("type", "unknown overlay type %q", item.Type)
		}
		if seen[item.Position] {
			return validationErr("position", "%s is occupied by more than one overlay", item.Position)
		}
		seen[item.Position] = true
		if s := item.Settings; s.TextSize != 0 && (s.TextSize < MinTextSize || s.TextSize > MaxTextSize) {
			return validationErr("textSize", "must be between %d and %d, got %d", MinTextSize, MaxTextSize, s.TextSize)
		}
		if s := item.Settings; s.ImageScale != 0 && (s.ImageScale < MinImageScale || s.ImageScale > MaxImageScale) {
			return validationErr("imageScale", "must be between %d and %d, got %d", MinImageScale, MaxImageScale, s.ImageScale)
		}
	}
	return nil
}
