package notify

import "strings"

const maskedSecret = "****"

// maskSegmentLen is the length above which a path segment is treated as a
// token.
const maskSegmentLen = 10

// MaskURL hides the secret parts of an Apprise URL for display: userinfo,
// query strings, bot tokens in the host position, and long path segments.
// Discord URLs keep the webhook ID and lose the token.
func MaskURL(raw string) string {
	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok {
		return maskedSecret
	}

	rest, _, hasQuery := strings.Cut(rest, "?")
	parts := strings.Split(rest, "/")

	if scheme == "discord" && len(parts) > 1 {
		return scheme + "://" + parts[0] + "/" + maskedSecret
	}

	parts[0] = maskHost(parts[0])
	for i := 1; i < len(parts); i++ {
		if len(parts[i]) > maskSegmentLen {
			parts[i] = maskedSecret
		}
	}

	masked := scheme + "://" + strings.Join(parts, "/")
	if hasQuery {
		masked += "?" + maskedSecret
	}
	return masked
}

func maskHost(host string) string {
	if i := strings.LastIndex(host, "@"); i >= 0 {
		return maskedSecret + "@" + maskHost(host[i+1:])
	}
	// Telegram style "123456:ABC-DEF" tokens sit where the host would be.
	// A numeric suffix is a port.
	_, after, ok := strings.Cut(host, ":")
	if ok && !strings.Contains(host, ".") && len(host) > maskSegmentLen &&
		strings.Trim(after, "0123456789") != "" {
		return maskedSecret
	}
	return host
}

// MaskURLs returns a masked copy of urls, or nil when urls is empty.
func MaskURLs(urls []string) []string {
	if len(urls) == 0 {
		return nil
	}
	masked := make([]string, len(urls))
	for i, u := range urls {
		masked[i] = MaskURL(u)
	}
	return masked
}
