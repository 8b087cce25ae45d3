package clientip

import (
	"net"
	"net/http"
	"strings"
)

// proxyHeaders are consulted in order when the deployment sits behind a proxy
// that sets them. Each holds the original client address.
var proxyHeaders = []string{"CF-Connecting-IP", "X-Real-IP"}

// FromRequest returns the client address of r in normalized form, or an
// empty string when none can be parsed.
//
// Forwarding headers are honored only with trustProxy set: anyone can send
// them, so without a proxy in front they would let clients pick the address
// that ends up in the logs.
func FromRequest(r *http.Request, trustProxy bool) string {
	if trustProxy {
		for _, h := range proxyHeaders {
			if ip := parseIP(r.Header.Get(h)); ip != "" {
				return ip
			}
		}
		// the first valid entry is the client; later ones are proxies
		for ip := range strings.SplitSeq(r.Header.Get("X-Forwarded-For"), ",") {
			if parsed := parseIP(ip); parsed != "" {
				return parsed
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
