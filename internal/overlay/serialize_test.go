package overlay

import (
	"encoding/json"
	"reflect"
	"testing"
)

func buildConfig(t *testing.T) OverlayConfig {
	t.Helper()
	cfg := NewConfig()
	var err error
	for i, typ := range Types() {
		cfg, err = AddOverlay(cfg, Positions()[i], typ)
		if err != nil {
			t.Fatalf("AddOverlay(%s): %v", typ, err)
		}
	}
	cfg, err = UpdateGlobalSettings(cfg, Patch{"opacity": 80, "dropShadow": 30, "xMargin": 12})
	if err != nil {
		t.Fatalf("UpdateGlobalSettings: %v", err)
	}
	return cfg
}

func TestConfigRoundTrip(t *testing.T) {
	cfg := buildConfig(t)

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back OverlayConfig
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(cfg, back) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", back, cfg)
	}
}

func TestConfigJSONIsPlainDocument(t *testing.T) {
	data, err := json.Marshal(buildConfig(t))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("config does not decode as a plain JSON object: %v", err)
	}
	if _, ok := doc["globalSettings"]; !ok {
		t.Error("missing globalSettings key")
	}
	if _, ok := doc["overlayItems"]; !ok {
		t.Error("missing overlayItems key")
	}
}

func TestConfigValidate(t *testing.T) {
	good := buildConfig(t)
	if err := good.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	dup := good
	dup.OverlayItems = append([]OverlayItem(nil), good.OverlayItems...)
	dup.OverlayItems[1].Position = dup.OverlayItems[0].Position
	if err := dup.Validate(); err == nil {
		t.Error("duplicate positions not rejected")
	}

	badSize := good
	badSize.OverlayItems = append([]OverlayItem(nil), good.OverlayItems...)
	badSize.OverlayItems[0].Settings.TextSize = 200
	if err := badSize.Validate(); err == nil {
		t.Error("out-of-range textSize not rejected")
	}

	badFont := good
	badFont.GlobalSettings.Font = "Comic Sans MS"
	if err := badFont.Validate(); err == nil {
		t.Error("unsupported font not rejected")
	}
}
