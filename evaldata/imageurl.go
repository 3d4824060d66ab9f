package evaldata

import "strings"

// PlaceholderImageURL stands in when a result has no usable image.
const PlaceholderImageURL = "https://via.placeholder.com/300x200?text=No+Image"

// ResolveImageURL returns the image URL to load for a result: the
// placeholder when none is set, with plain http upgraded to https so the
// image is never fetched over an insecure channel.
func ResolveImageURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return PlaceholderImageURL
	}
	if strings.HasPrefix(raw, "http://") {
		return "https://" + strings.TrimPrefix(raw, "http://")
	}
	return raw
}
