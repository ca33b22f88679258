// Package urlparam reads and appends query-string parameters the way the
// storefront theme builds its links.
package urlparam

import (
	"net/url"
	"regexp"
	"strings"
)

// Get returns the first value of name in a raw query string such as
// "?q=red+shoes&page=2". The leading "?" is optional. A missing parameter
// yields "". Malformed percent escapes are returned undecoded.
func Get(rawQuery, name string) string {
	if !strings.HasPrefix(rawQuery, "?") {
		rawQuery = "?" + rawQuery
	}

	re, err := regexp.Compile(`[?&]` + regexp.QuoteMeta(name) + `=([^&#]*)`)
	if err != nil {
		return ""
	}
	m := re.FindStringSubmatch(rawQuery)
	if m == nil {
		return ""
	}

	v := strings.ReplaceAll(m[1], "+", " ")
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}

// Add appends param=value to u. value is not escaped.
func Add(u, param, value string) string {
	sep := "?"
	if strings.Contains(u, "?") {
		sep = "&"
	}
	return u + sep + param + "=" + value
}
