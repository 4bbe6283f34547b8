package v1

import (
	"net/netip"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// proxyIPHeaders are single-value reverse proxy headers checked after
// X-Forwarded-For.
var proxyIPHeaders = []string{
	"X-Real-IP",
	"CF-Connecting-IP",
	"True-Client-IP",
	"X-Client-IP",
}

// clientIP resolves the originating address of a request behind the reverse
// proxy chain. Proxy headers win over the socket address; private and
// malformed entries are skipped, and a public IPv4 is preferred when the
// chain mixes address families.
func clientIP(c *fiber.Ctx) string {
	if ip := firstPublicIP(strings.Split(c.Get("X-Forwarded-For"), ",")); ip != "" {
		return ip
	}

	for _, header := range proxyIPHeaders {
		if ip := firstPublicIP([]string{c.Get(header)}); ip != "" {
			return ip
		}
	}

	if ip := firstPublicIP(forwardedEntries(c.Get("Forwarded"))); ip != "" {
		return ip
	}

	return c.IP()
}

// firstPublicIP returns the first public IPv4 in values, falling back to the
// first public IPv6 when the chain carries no IPv4 at all.
func firstPublicIP(values []string) string {
	var v6Fallback string

	for _, raw := range values {
		addr, ok := parseAddr(raw)
		if !ok || !isPublicAddr(addr) {
			continue
		}

		if addr.Is4() {
			return addr.String()
		}
		if v6Fallback == "" {
			v6Fallback = addr.String()
		}
	}

	return v6Fallback
}

// parseAddr parses one header entry into an address. Entries may carry
// quotes, ports, brackets, zone identifiers, or IPv4-mapped IPv6 forms.
func parseAddr(raw string) (netip.Addr, bool) {
	clean := strings.Trim(strings.TrimSpace(raw), `"`)
	if clean == "" {
		return netip.Addr{}, false
	}

	// Zone identifier, e.g. fe80::1%eth0
	if percent := strings.Index(clean, "%"); percent != -1 {
		clean = clean[:percent]
	}

	// Handles both 1.2.3.4:56 and [2001:db8::1]:56
	if addrPort, err := netip.ParseAddrPort(clean); err == nil {
		return addrPort.Addr().Unmap(), true
	}

	trimmed := strings.TrimSuffix(strings.TrimPrefix(clean, "["), "]")
	if addr, err := netip.ParseAddr(trimmed); err == nil {
		return addr.Unmap(), true
	}

	return netip.Addr{}, false
}

// isPublicAddr reports whether addr is routable visitor traffic rather than
// a private, loopback, link-local, or unspecified address.
func isPublicAddr(addr netip.Addr) bool {
	return !(addr.IsPrivate() ||
		addr.IsLoopback() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsLinkLocalMulticast() ||
		addr.IsUnspecified())
}

// forwardedEntries extracts the for= values from an RFC 7239 Forwarded header.
func forwardedEntries(header string) []string {
	var candidates []string

	for _, entry := range strings.Split(header, ",") {
		for _, part := range strings.Split(entry, ";") {
			part = strings.TrimSpace(part)
			if strings.HasPrefix(strings.ToLower(part), "for=") {
				candidates = append(candidates, part[len("for="):])
			}
		}
	}

	return candidates
}
