package useragent

import (
	"strings"

	ua "github.com/mileusna/useragent"
)

const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
)

// Device is the classified client, with graceful fallbacks when the
// user-agent string is empty or unparseable.
type Device struct {
	Type    string
	Browser string
	OS      string
}

// Classify parses a raw User-Agent header into device type, browser and
// OS labels. Unknown strings classify as desktop/unknown rather than
// failing.
func Classify(raw string) Device {
	device := Device{
		Type:    DeviceDesktop,
		Browser: "unknown",
		OS:      "unknown",
	}
	if raw == "" {
		return device
	}

	parsed := ua.Parse(raw)

	switch {
	case parsed.Tablet:
		device.Type = DeviceTablet
	case parsed.Mobile:
		device.Type = DeviceMobile
	}

	if parsed.Name != "" {
		device.Browser = strings.TrimSpace(parsed.Name + " " + parsed.Version)
	}
	if parsed.OS != "" {
		device.OS = strings.TrimSpace(parsed.OS + " " + parsed.OSVersion)
	}
	return device
}
