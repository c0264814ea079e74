package overlay

import (
	"fmt"
	"math"
	"time"
)

// WeatherReading is one cached weather observation from the live data
// source.
type WeatherReading struct {
	TemperatureC float64 `json:"temperature_c"`
	Conditions   string  `json:"conditions"`
}

// DataSource feeds the content resolver. Live sources pull from the
// capture backend; SampleSource provides fixed placeholder values for the
// edit grid. Absence of a value is a normal state, never an error.
type DataSource interface {
	Now() time.Time
	Weather() (WeatherReading, bool)
	FrameNumber() (int, bool)
	DayNumber() (int, bool)
	TimelapseName() (string, bool)
}

// ContentKind discriminates text from image content.
type ContentKind string

const (
	ContentText  ContentKind = "text"
	ContentImage ContentKind = "image"
)

// Content is the renderable output for one overlay instance.
type Content struct {
	Kind       ContentKind `json:"kind"`
	Text       string      `json:"text,omitempty"`
	ImageURL   string      `json:"imageUrl,omitempty"`
	ImageScale int         `json:"imageScale,omitempty"` // percent
}

// Placeholders used when data is missing. A broken overlay must never
// blank the rest of the composition, so every branch below degrades to
// one of these instead of failing.
const (
	weatherUnavailable    = "N/A"
	customTextPlaceholder = "Custom Text"
	namePlaceholder       = "Untitled Timelapse"
)

// Counter pad widths when leadingZeros is on.
const (
	framePadWidth = 6
	dayPadWidth   = 3
)

// ContentFor resolves what an overlay renders given its settings and a
// data source. It never fails; missing data falls back to a documented
// placeholder. The switch is exhaustive over the closed type set.
func ContentFor(item OverlayItem, src DataSource) Content {
	s := item.Settings
	switch item.Type {
	case TypeDateTime:
		format := s.DateFormat
		if format == "" {
			format = DefaultSettings(TypeDateTime).DateFormat
		}
		return textContent(FormatDateTime(src.Now(), format))

	case TypeWeather:
		reading, ok := src.Weather()
		if !ok {
			return textContent(weatherUnavailable)
		}
		return textContent(weatherText(reading, s))

	case TypeFrameNumber:
		n, ok := src.FrameNumber()
		if !ok {
			return textContent(counterText(0, framePadWidth, "Frame ", s))
		}
		return textContent(counterText(n, framePadWidth, "Frame ", s))

	case TypeDayNumber:
		n, ok := src.DayNumber()
		if !ok {
			return textContent(counterText(0, dayPadWidth, "Day ", s))
		}
		return textContent(counterText(n, dayPadWidth, "Day ", s))

	case TypeTimelapseName:
		name, ok := src.TimelapseName()
		if !ok || name == "" {
			return textContent(namePlaceholder)
		}
		return textContent(name)

	case TypeCustomText:
		if s.CustomText == "" {
			return textContent(customTextPlaceholder)
		}
		return textContent(s.CustomText)

	case TypeWatermark:
		// While an upload is in flight the settings still hold the last
		// known preview URL, so the frame keeps showing it.
		scale := s.ImageScale
		if scale == 0 {
			scale = DefaultSettings(TypeWatermark).ImageScale
		}
		return Content{Kind: ContentImage, ImageURL: s.ImageURL, ImageScale: scale}
	}

	return textContent("")
}

func textContent(text string) Content {
	return Content{Kind: ContentText, Text: text}
}

func weatherText(r WeatherReading, s OverlaySettings) string {
	unit := s.Unit
	if unit == "" {
		unit = UnitCelsius
	}
	temp := fmt.Sprintf("%d°C", int(math.Round(r.TemperatureC)))
	if unit == UnitFahrenheit {
		temp = fmt.Sprintf("%d°F", int(math.Round(r.TemperatureC*9/5+32)))
	}

	display := s.Display
	if display == "" {
		display = WeatherBoth
	}
	switch display {
	case WeatherTempOnly:
		return temp
	case WeatherConditionsOnly:
		if r.Conditions == "" {
			return weatherUnavailable
		}
		return r.Conditions
	default:
		if r.Conditions == "" {
			return temp
		}
		return temp + ", " + r.Conditions
	}
}

func counterText(n, padWidth int, prefix string, s OverlaySettings) string {
	num := fmt.Sprintf("%d", n)
	if s.LeadingZeros {
		num = fmt.Sprintf("%0*d", padWidth, n)
	}
	if s.HidePrefix {
		return num
	}
	return prefix + num
}
