// filepath: internal/video/embed_test.go
package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanVideoURL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain url", "https://youtu.be/abc123", "https://youtu.be/abc123"},
		{"whitespace", "  https://youtu.be/abc123  ", "https://youtu.be/abc123"},
		{
			"iframe double quotes",
			`<iframe src="https://www.youtube.com/embed/abc123" width="560"></iframe>`,
			"https://www.youtube.com/embed/abc123",
		},
		{
			"iframe single quotes",
			`<iframe src='https://player.vimeo.com/video/123'></iframe>`,
			"https://player.vimeo.com/video/123",
		},
		{
			"html entities",
			"&lt;iframe src=&quot;https://www.youtube.com/embed/abc123&quot;&gt;&lt;/iframe&gt;",
			"https://www.youtube.com/embed/abc123",
		},
		{
			"fragment with src",
			`src="https://www.youtube.com/embed/xyz"`,
			"https://www.youtube.com/embed/xyz",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, CleanVideoURL(c.in))
		})
	}
}

func TestToEmbedURL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{
			"youtube watch",
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			"https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			"youtube watch extra params",
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
			"https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			"youtube short link",
			"https://youtu.be/dQw4w9WgXcQ?si=xyz",
			"https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			"youtube shorts",
			"https://www.youtube.com/shorts/abc123",
			"https://www.youtube.com/embed/abc123",
		},
		{
			"facebook video",
			"https://www.facebook.com/somebody/videos/123456/?ref=share",
			"https://www.facebook.com/plugins/video.php?href=https%3A%2F%2Fwww.facebook.com%2Fsomebody%2Fvideos%2F123456%2F&show_text=false&width=560&height=315",
		},
		{
			"fb.watch keeps params",
			"https://fb.watch/abcDEF/",
			"https://www.facebook.com/plugins/video.php?href=https%3A%2F%2Ffb.watch%2FabcDEF%2F&show_text=false&width=560&height=315",
		},
		{
			"tiktok user video",
			"https://www.tiktok.com/@someone/video/7123456789012345678",
			"https://www.tiktok.com/embed/v2/7123456789012345678",
		},
		{
			"instagram reel",
			"https://www.instagram.com/reel/Cabc123/?igshid=1",
			"https://www.instagram.com/reel/Cabc123/embed/",
		},
		{
			"vimeo",
			"https://vimeo.com/76979871",
			"https://player.vimeo.com/video/76979871",
		},
		{
			"dailymotion",
			"https://www.dailymotion.com/video/x8abc12_some-title",
			"https://www.dailymotion.com/embed/video/x8abc12",
		},
		{
			"already embed passthrough",
			"https://www.youtube.com/embed/dQw4w9WgXcQ",
			"https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			"unknown host passthrough",
			"https://example.com/clip.mp4",
			"https://example.com/clip.mp4",
		},
		{
			"iframe input",
			`<iframe src="https://www.youtube.com/watch?v=abc123"></iframe>`,
			"https://www.youtube.com/embed/abc123",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ToEmbedURL(c.in))
		})
	}
}

func TestToEmbedURLIdempotent(t *testing.T) {
	inputs := []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://fb.watch/abcDEF/",
		"https://www.tiktok.com/@someone/video/7123456789012345678",
		"https://www.instagram.com/p/Cabc123/",
		"https://vimeo.com/76979871",
		"https://example.com/clip.mp4",
	}
	for _, in := range inputs {
		once := ToEmbedURL(in)
		assert.Equal(t, once, ToEmbedURL(once), in)
	}
}
