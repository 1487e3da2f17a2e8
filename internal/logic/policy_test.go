package logic

import "testing"

func intPtr(v int) *int       { return &v }
func u16Ptr(v uint16) *uint16 { return &v }

func TestDecideBothPresent(t *testing.T) {
	th := Thresholds{TempC: 30, LightADC: 10000}

	tests := []struct {
		name  string
		temp  int
		light uint16
		want  Outputs
	}{
		{"hot and dark", 31, 5000, Outputs{LED: true, Buzzer: true}},
		{"cool and bright", 25, 40000, Outputs{}},
		{"hot and bright", 35, 20000, Outputs{Buzzer: true}},
		{"cool and dark", 20, 100, Outputs{LED: true}},
	}

	for _, tt := range tests {
		got := Decide(intPtr(tt.temp), u16Ptr(tt.light), th)
		if got != tt.want {
			t.Errorf("%s: Decide = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestDecideFailSafe(t *testing.T) {
	th := Thresholds{TempC: 30, LightADC: 10000}

	tests := []struct {
		name  string
		temp  *int
		light *uint16
	}{
		{"temp missing", nil, u16Ptr(100)},
		{"light missing", intPtr(99), nil},
		{"both missing", nil, nil},
		{"temp missing while dark", nil, u16Ptr(0)},
		{"light missing while hot", intPtr(50), nil},
	}

	for _, tt := range tests {
		got := Decide(tt.temp, tt.light, th)
		if got.LED || got.Buzzer {
			t.Errorf("%s: expected all-off, got %+v", tt.name, got)
		}
	}
}

func TestDecideThresholdBoundaries(t *testing.T) {
	th := Thresholds{TempC: 30, LightADC: 10000}

	// Temperature exactly at the threshold must NOT trip the buzzer.
	if got := Decide(intPtr(30), u16Ptr(20000), th); got.Buzzer {
		t.Error("temp == threshold should not trip the buzzer")
	}
	if got := Decide(intPtr(31), u16Ptr(20000), th); !got.Buzzer {
		t.Error("temp one above threshold should trip the buzzer")
	}

	// Light exactly at the threshold is Bright: LED stays off.
	if got := Decide(intPtr(20), u16Ptr(10000), th); got.LED {
		t.Error("light == threshold should not turn the LED on")
	}
	if got := Decide(intPtr(20), u16Ptr(9999), th); !got.LED {
		t.Error("light one below threshold should turn the LED on")
	}
}

func TestClassifyLight(t *testing.T) {
	tests := []struct {
		light     uint16
		threshold uint16
		want      LightCondition
	}{
		{5000, 10000, LightDark},
		{40000, 10000, LightBright},
		{10000, 10000, LightBright}, // boundary is Bright
		{9999, 10000, LightDark},
		{0, 10000, LightDark},
		{65535, 10000, LightBright},
	}

	for _, tt := range tests {
		if got := ClassifyLight(tt.light, tt.threshold); got != tt.want {
			t.Errorf("ClassifyLight(%d, %d) = %s, want %s", tt.light, tt.threshold, got, tt.want)
		}
	}
}
