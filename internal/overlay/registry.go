package overlay

// Types returns all overlay types in the order they appear in the
// "add overlay" picker.
func Types() []OverlayType {
	return []OverlayType{
		TypeDateTime, TypeWeather, TypeFrameNumber, TypeDayNumber,
		TypeTimelapseName, TypeCustomText, TypeWatermark,
	}
}

func ValidType(t OverlayType) bool {
	switch t {
	case TypeWeather, TypeDateTime, TypeFrameNumber, TypeCustomText,
		TypeTimelapseName, TypeDayNumber, TypeWatermark:
		return true
	}
	return false
}

// DefaultSettings returns the baseline settings for an overlay type. The
// switch is exhaustive over the closed type set.
func DefaultSettings(t OverlayType) OverlaySettings {
	base := OverlaySettings{
		TextSize:  16,
		TextColor: "#FFFFFF",
	}
	switch t {
	case TypeDateTime:
		base.DateFormat = "YYYY-MM-DD HH:mm"
	case TypeWeather:
		base.Unit = UnitCelsius
		base.Display = WeatherBoth
	case TypeFrameNumber, TypeDayNumber:
		base.LeadingZeros = false
		base.HidePrefix = false
	case TypeCustomText:
		base.CustomText = ""
	case TypeTimelapseName:
		// text-only, no extra keys
	case TypeWatermark:
		base.ImageScale = 50
	}
	return base
}

// Label returns the picker name for an overlay type.
func Label(t OverlayType) string {
	switch t {
	case TypeWeather:
		return "Weather"
	case TypeDateTime:
		return "Date & Time"
	case TypeFrameNumber:
		return "Frame Number"
	case TypeCustomText:
		return "Custom Text"
	case TypeTimelapseName:
		return "Timelapse Name"
	case TypeDayNumber:
		return "Day Number"
	case TypeWatermark:
		return "Watermark"
	}
	return string(t)
}

// Description returns the one-line picker description for an overlay type.
func Description(t OverlayType) string {
	switch t {
	case TypeWeather:
		return "Current temperature and conditions"
	case TypeDateTime:
		return "Capture date and time with a configurable format"
	case TypeFrameNumber:
		return "Sequential frame counter"
	case TypeCustomText:
		return "Free-form text"
	case TypeTimelapseName:
		return "Name of the active timelapse"
	case TypeDayNumber:
		return "Days since the timelapse started"
	case TypeWatermark:
		return "Uploaded watermark image"
	}
	return ""
}
