package overlay

import "testing"

func TestDefaultSettingsPerType(t *testing.T) {
	for _, typ := range Types() {
		s := DefaultSettings(typ)
		if s.TextSize != 16 {
			t.Errorf("%s: TextSize = %d, want 16", typ, s.TextSize)
		}
		if s.TextColor != "#FFFFFF" {
			t.Errorf("%s: TextColor = %q, want #FFFFFF", typ, s.TextColor)
		}
	}

	if s := DefaultSettings(TypeDateTime); s.DateFormat != "YYYY-MM-DD HH:mm" {
		t.Errorf("date_time DateFormat = %q", s.DateFormat)
	}
	if s := DefaultSettings(TypeWeather); s.Unit != UnitCelsius || s.Display != WeatherBoth {
		t.Errorf("weather defaults = %q/%q, want Celsius/both", s.Unit, s.Display)
	}
	if s := DefaultSettings(TypeWatermark); s.ImageScale != 50 {
		t.Errorf("watermark ImageScale = %d, want 50", s.ImageScale)
	}
}

func TestTypesClosedSet(t *testing.T) {
	all := Types()
	if len(all) != 7 {
		t.Fatalf("Types() returned %d entries, want 7", len(all))
	}
	for _, typ := range all {
		if !ValidType(typ) {
			t.Errorf("ValidType(%s) = false", typ)
		}
		if Label(typ) == "" {
			t.Errorf("%s has empty label", typ)
		}
		if Description(typ) == "" {
			t.Errorf("%s has empty description", typ)
		}
	}
	if ValidType("gif") {
		t.Error(`ValidType("gif") = true, want false`)
	}
}
