package overlay

import "testing"

// emptySource reports no data for every reading.
type emptySource struct{ SampleSource }

func (emptySource) Weather() (WeatherReading, bool) { return WeatherReading{}, false }
func (emptySource) FrameNumber() (int, bool)        { return 0, false }
func (emptySource) DayNumber() (int, bool)          { return 0, false }
func (emptySource) TimelapseName() (string, bool)   { return "", false }

func TestContentDateTime(t *testing.T) {
	item := OverlayItem{Type: TypeDateTime, Settings: OverlaySettings{DateFormat: "YYYY-MM-DD"}}
	got := ContentFor(item, SampleSource{})
	if got.Text != "2025-07-20" {
		t.Errorf("Text = %q, want 2025-07-20", got.Text)
	}
	if got.Kind != ContentText {
		t.Errorf("Kind = %q, want text", got.Kind)
	}
}

func TestContentWeather(t *testing.T) {
	tests := []struct {
		name     string
		settings OverlaySettings
		want     string
	}{
		{"both celsius", OverlaySettings{Unit: UnitCelsius, Display: WeatherBoth}, "23°C, Partly Cloudy"},
		{"temp fahrenheit", OverlaySettings{Unit: UnitFahrenheit, Display: WeatherTempOnly}, "74°F"},
		{"conditions only", OverlaySettings{Display: WeatherConditionsOnly}, "Partly Cloudy"},
		{"defaults", OverlaySettings{}, "23°C, Partly Cloudy"},
	}
	for _, tt := range tests {
		item := OverlayItem{Type: TypeWeather, Settings: tt.settings}
		if got := ContentFor(item, SampleSource{}); got.Text != tt.want {
			t.Errorf("%s: Text = %q, want %q", tt.name, got.Text, tt.want)
		}
	}
}

func TestContentWeatherUnavailable(t *testing.T) {
	item := OverlayItem{Type: TypeWeather, Settings: DefaultSettings(TypeWeather)}
	if got := ContentFor(item, emptySource{}); got.Text != "N/A" {
		t.Errorf("Text = %q, want N/A", got.Text)
	}
}

func TestContentCounters(t *testing.T) {
	tests := []struct {
		name     string
		typ      OverlayType
		settings OverlaySettings
		want     string
	}{
		{"frame plain", TypeFrameNumber, OverlaySettings{}, "Frame 1042"},
		{"frame padded", TypeFrameNumber, OverlaySettings{LeadingZeros: true}, "Frame 001042"},
		{"frame bare", TypeFrameNumber, OverlaySettings{HidePrefix: true}, "1042"},
		{"day plain", TypeDayNumber, OverlaySettings{}, "Day 14"},
		{"day padded bare", TypeDayNumber, OverlaySettings{LeadingZeros: true, HidePrefix: true}, "014"},
	}
	for _, tt := range tests {
		item := OverlayItem{Type: tt.typ, Settings: tt.settings}
		if got := ContentFor(item, SampleSource{}); got.Text != tt.want {
			t.Errorf("%s: Text = %q, want %q", tt.name, got.Text, tt.want)
		}
	}
}

func TestContentCustomText(t *testing.T) {
	item := OverlayItem{Type: TypeCustomText, Settings: OverlaySettings{CustomText: "Hi there"}}
	if got := ContentFor(item, SampleSource{}); got.Text != "Hi there" {
		t.Errorf("Text = %q", got.Text)
	}

	item.Settings.CustomText = ""
	if got := ContentFor(item, SampleSource{}); got.Text != "Custom Text" {
		t.Errorf("empty custom text: Text = %q, want placeholder", got.Text)
	}
}

func TestContentTimelapseName(t *testing.T) {
	item := OverlayItem{Type: TypeTimelapseName}
	if got := ContentFor(item, SampleSource{}); got.Text != "Backyard Build" {
		t.Errorf("Text = %q", got.Text)
	}
	if got := ContentFor(item, emptySource{}); got.Text != "Untitled Timelapse" {
		t.Errorf("missing name: Text = %q, want placeholder", got.Text)
	}
}

func TestContentWatermark(t *testing.T) {
	item := OverlayItem{Type: TypeWatermark, Settings: OverlaySettings{ImageURL: "/assets/abc.png", ImageScale: 75}}
	got := ContentFor(item, SampleSource{})
	if got.Kind != ContentImage || got.ImageURL != "/assets/abc.png" || got.ImageScale != 75 {
		t.Errorf("content = %+v", got)
	}

	// An in-flight upload keeps showing the last known preview.
	item.Settings.IsUploading = true
	item.Settings.ImageURL = "data:image/png;base64,xxxx"
	got = ContentFor(item, SampleSource{})
	if got.ImageURL != "data:image/png;base64,xxxx" {
		t.Errorf("uploading watermark: ImageURL = %q, want preview kept", got.ImageURL)
	}

	// No scale set falls back to the type default.
	item.Settings.ImageScale = 0
	if got := ContentFor(item, SampleSource{}); got.ImageScale != 50 {
		t.Errorf("ImageScale = %d, want default 50", got.ImageScale)
	}
}
