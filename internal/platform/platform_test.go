package platform

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want Platform
	}{
		{"youtube watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", YouTube},
		{"youtube short link", "https://youtu.be/abc123", YouTube},
		{"youtube uppercase", "HTTPS://WWW.YOUTUBE.COM/WATCH?V=ABC", YouTube},
		{"instagram reel", "https://www.instagram.com/reel/xyz/", Instagram},
		{"facebook video", "https://www.facebook.com/watch/?v=1", Facebook},
		{"fb.watch", "https://fb.watch/abcd/", Facebook},
		{"fb.com", "https://fb.com/video/1", Facebook},
		{"tiktok", "https://www.tiktok.com/@user/video/1", TikTok},
		{"twitter", "https://twitter.com/user/status/1", Twitter},
		{"x.com", "https://x.com/user/status/1", Twitter},
		{"snapchat", "https://www.snapchat.com/spotlight/abc", Snapchat},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Detect(tc.url)
			if !ok {
				t.Fatalf("Detect(%q) reported no match", tc.url)
			}
			if got != tc.want {
				t.Fatalf("Detect(%q) = %q, want %q", tc.url, got, tc.want)
			}
		})
	}
}

func TestDetectNoMatch(t *testing.T) {
	for _, url := range []string{
		"https://vimeo.com/12345",
		"https://example.com/video",
		"",
		"not a url at all",
	} {
		if p, ok := Detect(url); ok {
			t.Fatalf("Detect(%q) = %q, want no match", url, p)
		}
	}
}

func TestDetectSubstringImprecisionIsAccepted(t *testing.T) {
	// Hostname fragments are matched anywhere in the string; lookalike
	// domains are true positives by contract.
	p, ok := Detect("https://notyoutube.com.evil.tld/watch")
	if !ok || p != YouTube {
		t.Fatalf("Detect() = %q, %v, want youtube match", p, ok)
	}
}

func TestDetectTableOrderBreaksTies(t *testing.T) {
	// A URL matching two rules resolves to the earlier table entry.
	p, ok := Detect("https://youtube.com/redirect?to=tiktok.com")
	if !ok || p != YouTube {
		t.Fatalf("Detect() = %q, %v, want youtube to win the tie", p, ok)
	}
}

func TestFallbackForCoversEveryPlatform(t *testing.T) {
	for _, p := range All {
		fb := FallbackFor(p)
		if fb.Title == "" || fb.Thumbnail == "" || fb.Author == "" {
			t.Fatalf("FallbackFor(%q) has empty fields: %+v", p, fb)
		}
	}
}
