package avatar

import (
	"strconv"
	"strings"
	"time"
)

// now is the clock used for cache-busting timestamps.
var now = time.Now

// AddCacheBusting appends a timestamp query parameter so clients and CDNs
// fetch a fresh copy. An empty URL is returned unchanged.
func AddCacheBusting(url string) string {
	if url == "" {
		return url
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "t=" + strconv.FormatInt(now().UnixMilli(), 10)
}

// GetAvatarURL returns the URL to display for an avatar. URLs served from
// managed storage are cache-busted; anything else is returned as is.
// fallbackID is accepted for call-site compatibility and not used.
func GetAvatarURL(avatarURL, fallbackID string) string {
	if avatarURL == "" {
		return avatarURL
	}
	if strings.Contains(avatarURL, "supabase") || strings.Contains(avatarURL, "storage") {
		return AddCacheBusting(avatarURL)
	}
	return avatarURL
}
