package useragent

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantType    string
		wantBrowser string
		wantOS      string
	}{
		{
			name:        "chrome on windows",
			raw:         "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			wantType:    DeviceDesktop,
			wantBrowser: "Chrome",
			wantOS:      "Windows",
		},
		{
			name:        "safari on iphone",
			raw:         "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
			wantType:    DeviceMobile,
			wantBrowser: "Safari",
			wantOS:      "iOS",
		},
		{
			name:     "ipad",
			raw:      "Mozilla/5.0 (iPad; CPU OS 16_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.6 Mobile/15E148 Safari/604.1",
			wantType: DeviceTablet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.raw)
			if got.Type != tt.wantType {
				t.Errorf("type = %q, want %q", got.Type, tt.wantType)
			}
			if tt.wantBrowser != "" && !strings.Contains(got.Browser, tt.wantBrowser) {
				t.Errorf("browser = %q, want contains %q", got.Browser, tt.wantBrowser)
			}
			if tt.wantOS != "" && !strings.Contains(got.OS, tt.wantOS) {
				t.Errorf("os = %q, want contains %q", got.OS, tt.wantOS)
			}
		})
	}
}

func TestClassifyFallbacks(t *testing.T) {
	for _, raw := range []string{"", "curl-like-gibberish"} {
		got := Classify(raw)
		if got.Type != DeviceDesktop {
			t.Errorf("Classify(%q).Type = %q, want desktop", raw, got.Type)
		}
		if got.Browser == "" || got.OS == "" {
			t.Errorf("Classify(%q) left empty labels: %+v", raw, got)
		}
	}
}
