// Package analytics implements first-party page view analytics: traffic
// source classification and daily counter aggregation.
package analytics

import (
	"net/url"
	"strings"
)

// TrafficSource is the acquisition channel of a page view.
type TrafficSource string

// Traffic source channels.
const (
	SourceOrganic  TrafficSource = "organic"
	SourceDirect   TrafficSource = "direct"
	SourceReferral TrafficSource = "referral"
	SourceSocial   TrafficSource = "social"
)

// socialUTMSources are utm_source values treated as social regardless of the
// utm_medium value, as long as a medium is present.
var socialUTMSources = map[string]bool{
	"facebook":  true,
	"instagram": true,
	"twitter":   true,
	"linkedin":  true,
	"kakao":     true,
	"naver":     true,
}

// searchDomains cover the engines that matter for a Korean audience plus the
// global ones.
var searchDomains = []string{
	"google.com",
	"google.co.kr",
	"google.co.jp",
	"naver.com",
	"search.naver.com",
	"daum.net",
	"search.daum.net",
	"bing.com",
	"yahoo.com",
	"duckduckgo.com",
}

var socialDomains = []string{
	"facebook.com",
	"instagram.com",
	"twitter.com",
	"x.com",
	"linkedin.com",
	"pinterest.com",
	"youtube.com",
	"kakao.com",
	"kakaocorp.com",
	"brunch.co.kr",
}

// ClassifySource determines the acquisition channel of a page view from its
// UTM parameters and referrer. UTM tagging wins over the referrer when the
// medium maps to a known channel; a tagged medium that maps to nothing falls
// through to referrer analysis rather than being forced into a bucket.
// siteHost is the canonical host of the site itself, used to ignore internal
// navigation. The function is total: malformed input classifies as direct.
func ClassifySource(utmSource, utmMedium, referrer, siteHost string) TrafficSource {
	utmSource = strings.ToLower(strings.TrimSpace(utmSource))
	utmMedium = strings.ToLower(strings.TrimSpace(utmMedium))

	if utmMedium != "" {
		if strings.Contains(utmMedium, "social") || socialUTMSources[utmSource] {
			return SourceSocial
		}
		switch utmMedium {
		case "organic", "search":
			return SourceOrganic
		case "referral":
			return SourceReferral
		}
		// Unrecognized mediums fall through to referrer analysis.
	}

	if hostname := referrerHostname(referrer); hostname != "" {
		for _, domain := range searchDomains {
			if strings.Contains(hostname, domain) {
				return SourceOrganic
			}
		}
		for _, domain := range socialDomains {
			if strings.Contains(hostname, domain) {
				return SourceSocial
			}
		}
		if hostname != siteHost && !strings.Contains(hostname, siteHost) {
			return SourceReferral
		}
	}

	return SourceDirect
}

// referrerHostname extracts the lowercased hostname from a referrer value.
// Anything that does not parse as an absolute URL is treated as no referrer.
func referrerHostname(referrer string) string {
	if referrer == "" {
		return ""
	}
	u, err := url.Parse(referrer)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
