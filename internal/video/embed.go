// filepath: internal/video/embed.go
// Package video normalizes pasted video links. Admins paste whatever the
// share dialog gave them: a watch URL, a short link, or a whole iframe
// snippet. Both functions pass unrecognized input through unchanged so a bad
// paste degrades to a broken link, never a lost field.
package video

import (
	"html"
	"net/url"
	"regexp"
	"strings"
)

var iframeSrcPatterns = []*regexp.Regexp{
	regexp.MustCompile(`src=["']([^"']+)["']`),
	regexp.MustCompile(`src=([^\s>]+)`),
	regexp.MustCompile(`src\s*=\s*["']?([^"'\s>]+)["']?`),
}

var (
	youtubeWatchRe  = regexp.MustCompile(`[?&]v=([^&]+)`)
	youtubeShortRe  = regexp.MustCompile(`youtu\.be/([^?&]+)`)
	youtubeShortsRe = regexp.MustCompile(`shorts/([^?&]+)`)
	youtubeEmbedRe  = regexp.MustCompile(`embed/([^?&]+)`)
	tiktokUserRe    = regexp.MustCompile(`@[^/]+/video/(\d+)`)
	tiktokVideoRe   = regexp.MustCompile(`/video/(\d+)`)
	tiktokShortRe   = regexp.MustCompile(`/v/(\d+)`)
	vimeoRe         = regexp.MustCompile(`vimeo\.com/(\d+)`)
	dailymotionRe   = regexp.MustCompile(`/video/([^_?]+)`)
)

// CleanVideoURL trims the input, decodes HTML entities and, when the input is
// an iframe snippet, extracts the src URL. Anything else comes back as-is.
func CleanVideoURL(input string) string {
	if input == "" {
		return ""
	}

	input = strings.TrimSpace(input)

	if strings.Contains(input, "&quot;") || strings.Contains(input, "&lt;") ||
		strings.Contains(input, "&gt;") || strings.Contains(input, "&#") {
		input = html.UnescapeString(input)
	}

	if strings.Contains(input, "<iframe") && strings.Contains(input, "src") {
		for _, re := range iframeSrcPatterns {
			if m := re.FindStringSubmatch(input); len(m) > 1 && m[1] != "" {
				return m[1]
			}
		}
		return input
	}

	// Possibly a truncated iframe fragment.
	if strings.Contains(input, "<iframe") || strings.Contains(input, "src=") {
		re := regexp.MustCompile(`src=["']?([^"'\s>]+)["']?`)
		if m := re.FindStringSubmatch(input); len(m) > 1 && m[1] != "" {
			return m[1]
		}
	}

	return input
}

// ToEmbedURL converts a share URL into the embeddable player URL for the
// platforms the storefront supports. Already-embeddable URLs and unknown
// hosts pass through unchanged, which also makes the function idempotent.
func ToEmbedURL(rawURL string) string {
	if rawURL == "" {
		return ""
	}

	u := CleanVideoURL(rawURL)

	if strings.Contains(u, "/embed/") || strings.Contains(u, "plugins/video") {
		return u
	}

	if strings.Contains(u, "youtube.com") || strings.Contains(u, "youtu.be") {
		var videoID string
		switch {
		case strings.Contains(u, "youtube.com/watch?v="):
			videoID = firstMatch(youtubeWatchRe, u)
		case strings.Contains(u, "youtu.be/"):
			videoID = firstMatch(youtubeShortRe, u)
		case strings.Contains(u, "youtube.com/shorts/"):
			videoID = firstMatch(youtubeShortsRe, u)
		case strings.Contains(u, "youtube.com/embed/"):
			videoID = firstMatch(youtubeEmbedRe, u)
		}
		if videoID != "" {
			return "https://www.youtube.com/embed/" + videoID
		}
	}

	if strings.Contains(u, "facebook.com") || strings.Contains(u, "fb.watch") {
		if strings.Contains(u, "fb.watch/") {
			return facebookPluginURL(u)
		}
		if strings.Contains(u, "/videos/") || strings.Contains(u, "/watch") || strings.Contains(u, "/reel") {
			clean := strings.SplitN(u, "?", 2)[0]
			return facebookPluginURL(clean)
		}
	}

	if strings.Contains(u, "tiktok.com") {
		videoID := firstMatch(tiktokUserRe, u)
		if videoID == "" {
			videoID = firstMatch(tiktokVideoRe, u)
		}
		if videoID == "" {
			videoID = firstMatch(tiktokShortRe, u)
		}
		if videoID != "" {
			return "https://www.tiktok.com/embed/v2/" + videoID
		}
	}

	if strings.Contains(u, "instagram.com") {
		if strings.Contains(u, "/p/") || strings.Contains(u, "/reel/") || strings.Contains(u, "/tv/") {
			clean := strings.SplitN(u, "?", 2)[0]
			if !strings.HasSuffix(clean, "/") {
				clean += "/"
			}
			return clean + "embed/"
		}
	}

	if strings.Contains(u, "vimeo.com") {
		if videoID := firstMatch(vimeoRe, u); videoID != "" {
			return "https://player.vimeo.com/video/" + videoID
		}
	}

	if strings.Contains(u, "dailymotion.com") {
		if videoID := firstMatch(dailymotionRe, u); videoID != "" {
			return "https://www.dailymotion.com/embed/video/" + videoID
		}
	}

	return u
}

func firstMatch(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	return ""
}

func facebookPluginURL(videoURL string) string {
	return "https://www.facebook.com/plugins/video.php?href=" +
		url.QueryEscape(videoURL) + "&show_text=false&width=560&height=315"
}
