package weathercode

import "testing"

func TestClassifyIconRanges(t *testing.T) {
	tests := []struct {
		name string
		code int
		want string
	}{
		{name: "clear sky", code: 0, want: IconClearSky},
		{name: "mainly clear falls through to partly", code: 1, want: IconPartlyCloudy},
		{name: "partly cloudy code", code: 2, want: IconCloudy},
		{name: "overcast", code: 3, want: IconCloudy},
		{name: "fog", code: 45, want: IconFog},
		{name: "rime fog", code: 48, want: IconFog},
		{name: "gap below fog", code: 40, want: IconPartlyCloudy},
		{name: "gap between fog and rain", code: 50, want: IconPartlyCloudy},
		{name: "gap between rain and snow", code: 70, want: IconPartlyCloudy},
		{name: "gap between snow and thunderstorm", code: 90, want: IconPartlyCloudy},
		{name: "thunderstorm lower bound", code: 95, want: IconThunderstorm},
		{name: "beyond known codes still thunderstorm", code: 999, want: IconThunderstorm},
		{name: "negative code", code: -5, want: IconPartlyCloudy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, icon := Classify(tt.code)
			if icon != tt.want {
				t.Errorf("Classify(%d) icon = %q, want %q", tt.code, icon, tt.want)
			}
		})
	}
}

func TestClassifyRainRange(t *testing.T) {
	for code := 51; code <= 67; code++ {
		if _, icon := Classify(code); icon != IconRain {
			t.Errorf("Classify(%d) icon = %q, want %q", code, icon, IconRain)
		}
	}
}

func TestClassifySnowRange(t *testing.T) {
	for code := 71; code <= 86; code++ {
		if _, icon := Classify(code); icon != IconSnow {
			t.Errorf("Classify(%d) icon = %q, want %q", code, icon, IconSnow)
		}
	}
}

func TestClassifyDescriptions(t *testing.T) {
	tests := []struct {
		name string
		code int
		want string
	}{
		{name: "clear sky", code: 0, want: "Clear sky"},
		{name: "moderate drizzle", code: 53, want: "Moderate drizzle"},
		{name: "thunderstorm with heavy hail", code: 99, want: "Thunderstorm with heavy hail"},
		{name: "unknown code", code: 42, want: DescriptionUnknown},
		{name: "negative code", code: -1, want: DescriptionUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, _ := Classify(tt.code)
			if desc != tt.want {
				t.Errorf("Classify(%d) description = %q, want %q", tt.code, desc, tt.want)
			}
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	for _, code := range []int{-100, 0, 1, 45, 60, 75, 95, 999} {
		d1, i1 := Classify(code)
		d2, i2 := Classify(code)
		if d1 != d2 || i1 != i2 {
			t.Errorf("Classify(%d) not deterministic: (%q, %q) vs (%q, %q)", code, d1, i1, d2, i2)
		}
	}
}
