package overlay

import (
	"reflect"
	"testing"
)

func TestResolveOpacityAndFontFromGlobal(t *testing.T) {
	g := DefaultGlobalSettings()
	g.Opacity = 50
	g.Font = "Monaco"

	item := OverlayItem{Type: TypeDateTime, Settings: DefaultSettings(TypeDateTime)}
	style := Resolve(g, item)

	if style.Opacity != 0.5 {
		t.Errorf("Opacity = %v, want 0.5", style.Opacity)
	}
	if style.FontFamily != "Monaco" {
		t.Errorf("FontFamily = %q, want Monaco", style.FontFamily)
	}
}

func TestResolveFallsBackToTypeDefaults(t *testing.T) {
	g := DefaultGlobalSettings()
	item := OverlayItem{Type: TypeWeather} // no settings at all

	style := Resolve(g, item)
	if style.TextSize != 16 {
		t.Errorf("TextSize = %d, want type default 16", style.TextSize)
	}
	if style.TextColor != "#FFFFFF" {
		t.Errorf("TextColor = %q, want type default #FFFFFF", style.TextColor)
	}
}

func TestResolveItemOverridesBeatDefaults(t *testing.T) {
	g := DefaultGlobalSettings()
	item := OverlayItem{
		Type:     TypeCustomText,
		Settings: OverlaySettings{TextSize: 32, TextColor: "#FF8800", EnableBackground: true},
	}

	style := Resolve(g, item)
	if style.TextSize != 32 || style.TextColor != "#FF8800" || !style.Background {
		t.Errorf("style = %+v", style)
	}
}

func TestResolveShadow(t *testing.T) {
	g := DefaultGlobalSettings()

	g.DropShadow = 0
	if style := Resolve(g, OverlayItem{Type: TypeDateTime}); style.Shadow != nil {
		t.Error("dropShadow 0 must produce no shadow")
	}

	g.DropShadow = 50
	style := Resolve(g, OverlayItem{Type: TypeDateTime})
	if style.Shadow == nil {
		t.Fatal("dropShadow 50 must produce a shadow")
	}
	if style.Shadow.OffsetX != 2 || style.Shadow.Blur != 5 {
		t.Errorf("shadow = %+v, want offset 2 blur 5", style.Shadow)
	}
	if style.Shadow.Alpha != 0.8 {
		t.Errorf("shadow alpha = %v, want 0.8", style.Shadow.Alpha)
	}
}

func TestResolveDeterministic(t *testing.T) {
	g := DefaultGlobalSettings()
	g.Opacity = 73
	g.DropShadow = 21
	item := OverlayItem{Type: TypeFrameNumber, Settings: OverlaySettings{TextSize: 24}}

	a := Resolve(g, item)
	b := Resolve(g, item)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Resolve not deterministic: %+v vs %+v", a, b)
	}
}

// Resolving one item must not be influenced by other items in the config.
func TestResolveIndependentOfSiblings(t *testing.T) {
	g := DefaultGlobalSettings()
	item := OverlayItem{Type: TypeDateTime, Settings: OverlaySettings{TextSize: 20}}

	alone := Resolve(g, item)

	cfg := NewConfig()
	cfg, _ = AddOverlay(cfg, PositionBottomLeft, TypeWatermark)
	cfg, _ = UpdateOverlay(cfg, cfg.OverlayItems[0].ID, Patch{"imageScale": 150})
	together := Resolve(g, item)

	if !reflect.DeepEqual(alone, together) {
		t.Error("unrelated item changed another item's resolved style")
	}
}
