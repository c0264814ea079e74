package overlay

import "time"

// SampleSource provides the fixed placeholder values shown in the edit
// grid, so edit-mode previews are stable regardless of live data.
type SampleSource struct{}

// sampleInstant is the fixed example instant used for date/time previews.
var sampleInstant = time.Date(2025, time.July, 20, 12, 0, 0, 0, time.UTC)

func (SampleSource) Now() time.Time { return sampleInstant }

func (SampleSource) Weather() (WeatherReading, bool) {
	return WeatherReading{TemperatureC: 23.4, Conditions: "Partly Cloudy"}, true
}

func (SampleSource) FrameNumber() (int, bool) { return 1042, true }

func (SampleSource) DayNumber() (int, bool) { return 14, true }

func (SampleSource) TimelapseName() (string, bool) { return "Backyard Build", true }
