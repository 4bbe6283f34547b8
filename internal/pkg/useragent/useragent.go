// Package useragent classifies user agent strings as bots or humans.
package useragent

import "strings"

// botPatterns are matched as case-insensitive substrings. The list covers the
// major crawlers plus the HTTP clients and headless browsers that show up in
// synthetic traffic.
var botPatterns = []string{
	"bot",
	"crawler",
	"spider",
	"crawling",
	"googlebot",
	"bingbot",
	"slurp",
	"duckduckbot",
	"baiduspider",
	"yandexbot",
	"sogou",
	"exabot",
	"facebot",
	"ia_archiver",
	"naver",
	"yeti",
	"headlesschrome",
	"phantomjs",
	"curl",
	"wget",
	"python",
	"java",
	"node",
	"postman",
	"insomnia",
}

// IsBot reports whether the given user agent string belongs to a known bot,
// crawler, or scripted HTTP client. An empty user agent is treated as human:
// some privacy proxies strip the header and we prefer to count those visits.
func IsBot(userAgent string) bool {
	if userAgent == "" {
		return false
	}

	ua := strings.ToLower(userAgent)
	for _, pattern := range botPatterns {
		if strings.Contains(ua, pattern) {
			return true
		}
	}
	return false
}
