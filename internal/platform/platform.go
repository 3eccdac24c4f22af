package platform

import "strings"

// Platform identifies one of the social/video services the resolver supports.
type Platform string

const (
	YouTube   Platform = "youtube"
	Instagram Platform = "instagram"
	Facebook  Platform = "facebook"
	TikTok    Platform = "tiktok"
	Twitter   Platform = "twitter"
	Snapchat  Platform = "snapchat"
)

// All lists every supported platform in detection precedence order.
var All = []Platform{YouTube, Instagram, Facebook, TikTok, Twitter, Snapchat}

type rule struct {
	platform  Platform
	fragments []string
}

// Detection is a plain substring match against hostname fragments. The table
// order is the tie-break when a URL matches more than one rule. Strings like
// "notyoutube.com.evil.tld" are accepted as matches on purpose; the resolver
// performs no URL validation of its own.
var rules = []rule{
	{YouTube, []string{"youtube.com", "youtu.be"}},
	{Instagram, []string{"instagram.com"}},
	{Facebook, []string{"facebook.com", "fb.watch", "fb.com"}},
	{TikTok, []string{"tiktok.com"}},
	{Twitter, []string{"twitter.com", "x.com"}},
	{Snapchat, []string{"snapchat.com"}},
}

// Detect classifies a URL by platform. The second return value is false when
// no rule matches.
func Detect(url string) (Platform, bool) {
	lower := strings.ToLower(url)
	for _, r := range rules {
		for _, fragment := range r.fragments {
			if strings.Contains(lower, fragment) {
				return r.platform, true
			}
		}
	}
	return "", false
}

// Fallback captures the static literals substituted for fields a provider
// could not supply. Every platform has one so normalized results are never
// partially populated.
type Fallback struct {
	Title     string
	Thumbnail string
	Author    string
}

var fallbacks = map[Platform]Fallback{
	YouTube:   {Title: "YouTube Video", Thumbnail: "https://www.youtube.com/favicon.ico", Author: "YouTube User"},
	Instagram: {Title: "Instagram Post", Thumbnail: "https://www.instagram.com/static/images/ico/favicon.ico/36b3ee2d91ed.ico", Author: "Instagram User"},
	Facebook:  {Title: "Facebook Video", Thumbnail: "https://www.facebook.com/images/fb_icon_325x325.png", Author: "Facebook User"},
	TikTok:    {Title: "TikTok Video", Thumbnail: "https://www.tiktok.com/favicon.ico", Author: "TikTok User"},
	Twitter:   {Title: "Twitter/X Video", Thumbnail: "https://abs.twimg.com/favicons/twitter.ico", Author: "Twitter User"},
	Snapchat:  {Title: "Snapchat Story", Thumbnail: "https://www.snapchat.com/favicon.ico", Author: "Snapchat User"},
}

// FallbackFor returns the static field literals for a platform.
func FallbackFor(p Platform) Fallback {
	return fallbacks[p]
}
