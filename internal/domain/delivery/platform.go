package delivery

import "strings"

// Platform identifies the delivery platform an order came from.
type Platform string

const (
	PlatformZomato Platform = "zomato"
	PlatformSwiggy Platform = "swiggy"
)

func (p Platform) String() string {
	return string(p)
}

// ParsePlatform resolves a platform name from a webhook path segment.
func ParsePlatform(raw string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(PlatformZomato):
		return PlatformZomato, nil
	case string(PlatformSwiggy):
		return PlatformSwiggy, nil
	default:
		return "", ErrUnknownPlatform
	}
}
