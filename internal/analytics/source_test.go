package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const siteHost = "ttig.kr"

func TestClassifySource_UTMMedium(t *testing.T) {
	tests := []struct {
		name      string
		utmSource string
		utmMedium string
		want      TrafficSource
	}{
		{"social medium", "newsletter", "social", SourceSocial},
		{"paid social medium", "meta", "paid-social", SourceSocial},
		{"social source wins over cpc medium", "facebook", "cpc", SourceSocial},
		{"kakao source", "kakao", "cpc", SourceSocial},
		{"naver source", "naver", "cpc", SourceSocial},
		{"organic medium", "google", "organic", SourceOrganic},
		{"search medium", "google", "search", SourceOrganic},
		{"referral medium", "partner-blog", "referral", SourceReferral},
		{"mixed case medium", "Google", "Organic", SourceOrganic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifySource(tt.utmSource, tt.utmMedium, "", siteHost)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifySource_UnknownMediumFallsThroughToReferrer(t *testing.T) {
	// A tagged medium that maps to no channel defers to the referrer.
	got := ClassifySource("spring-promo", "email", "https://www.google.com/search?q=seongsu+cafe", siteHost)
	assert.Equal(t, SourceOrganic, got)

	got = ClassifySource("spring-promo", "email", "", siteHost)
	assert.Equal(t, SourceDirect, got)
}

func TestClassifySource_Referrer(t *testing.T) {
	tests := []struct {
		name     string
		referrer string
		want     TrafficSource
	}{
		{"google", "https://www.google.com/search?q=ttig", SourceOrganic},
		{"google korea", "https://www.google.co.kr/", SourceOrganic},
		{"naver search", "https://search.naver.com/search.naver?query=ttig", SourceOrganic},
		{"daum", "https://search.daum.net/search?q=hannam", SourceOrganic},
		{"bing", "https://www.bing.com/search?q=seoul+stay", SourceOrganic},
		{"duckduckgo", "https://duckduckgo.com/?q=ttig", SourceOrganic},
		{"instagram", "https://www.instagram.com/", SourceSocial},
		{"x", "https://x.com/somebody/status/1", SourceSocial},
		{"youtube", "https://www.youtube.com/watch?v=abc", SourceSocial},
		{"brunch", "https://brunch.co.kr/@writer/12", SourceSocial},
		{"kakao", "https://story.kakao.com/ch/xyz", SourceSocial},
		{"external blog", "https://someblog.example.com/posts/seoul", SourceReferral},
		{"internal navigation", "https://ttig.kr/places/seongsu-cafe-onion", SourceDirect},
		{"subdomain of site", "https://www.ttig.kr/", SourceDirect},
		{"no referrer", "", SourceDirect},
		{"relative referrer", "/places", SourceDirect},
		{"garbage referrer", "not a url at all ::", SourceDirect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifySource("", "", tt.referrer, siteHost)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifySource_NoSignalsIsDirect(t *testing.T) {
	assert.Equal(t, SourceDirect, ClassifySource("", "", "", siteHost))
}
