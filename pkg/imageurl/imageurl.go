package imageurl

import (
	"net/url"
	"strings"
)

// ProxyPrefix is prepended to URLs that must go through the proxy.
const ProxyPrefix = "https://image.baidu.com/search/down?url="

// hotlinkProtected lists host fragments that need the proxy.
var hotlinkProtected = []string{"sinaimg"}

// Proxy returns the proxied form of raw when it points at a hotlink
// protected host and raw unchanged otherwise. An empty raw stays empty.
// Already proxied URLs are returned as is.
func Proxy(raw string) string {
	if raw == "" || strings.HasPrefix(raw, ProxyPrefix) {
		return raw
	}
	for _, frag := range hotlinkProtected {
		if strings.Contains(raw, frag) {
			return ProxyPrefix + raw
		}
	}
	return raw
}

// Unproxy strips ProxyPrefix, returning the original URL.
func Unproxy(src string) string {
	rest, ok := strings.CutPrefix(src, ProxyPrefix)
	if !ok {
		return src
	}
	if u, err := url.QueryUnescape(rest); err == nil {
		return u
	}
	return rest
}
