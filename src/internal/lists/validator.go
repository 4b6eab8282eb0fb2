package lists

import (
	"regexp"

	"github.com/maksimkurb/ikuai-ipgroups/src/internal/config"
)

var (
	ipv4CIDRRegexp = regexp.MustCompile(
		`^(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}` +
			`(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)` +
			`/([0-9]|[12][0-9]|3[0-2])$`)

	// ipv6CIDRRegexp is intentionally loose: any hex/colon run followed by a
	// 1-3 digit prefix length. "::/999" is accepted.
	ipv6CIDRRegexp = regexp.MustCompile(`^[0-9a-fA-F:]+/\d{1,3}$`)
)

// ValidateCIDR reports whether token is an address range of the given family.
// The token must already be trimmed.
func ValidateCIDR(token string, family config.IPFamily) bool {
	switch family {
	case config.Ipv4:
		return ipv4CIDRRegexp.MatchString(token)
	case config.Ipv6:
		return ipv6CIDRRegexp.MatchString(token)
	default:
		return false
	}
}
