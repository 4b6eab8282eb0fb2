package config

type IPFamily uint8

const (
	Ipv4 IPFamily = 4
	Ipv6 IPFamily = 6
)

func (f IPFamily) String() string {
	switch f {
	case Ipv4:
		return "IPv4"
	case Ipv6:
		return "IPv6"
	default:
		return "unknown"
	}
}

// RegistryTag is the address type literal used in registry delegated-stats files.
func (f IPFamily) RegistryTag() string {
	if f == Ipv6 {
		return "ipv6"
	}
	return "ipv4"
}

type SourceFormat string

const (
	// FormatPlain is one CIDR per line.
	FormatPlain SourceFormat = "plain"
	// FormatRegistryStatistics is the pipe-delimited RIR delegated-stats format (APNIC "delegated-apnic-latest").
	FormatRegistryStatistics SourceFormat = "registry-statistics"
)

type GroupNaming string

const (
	// NamingPlain names a multi-chunk scope "<label>IP<n>".
	NamingPlain GroupNaming = "plain"
	// NamingDashSuffix names a multi-chunk scope "<label>IP-<n>".
	NamingDashSuffix GroupNaming = "dash-suffix"
	// NamingParenSuffix names a multi-chunk scope "<label>IP(<n>)".
	NamingParenSuffix GroupNaming = "paren-suffix"
	// NamingGlobalSequential names every group "<base_label>-<n>" with n counted across the run.
	NamingGlobalSequential GroupNaming = "global-sequential"
)

type CommentMode string

const (
	CommentNone     CommentMode = "none"
	CommentCIDRList CommentMode = "cidr-list"
)

type DedupMode string

const (
	// DedupString removes exact textual duplicates only.
	DedupString DedupMode = "string"
	// DedupCollapse additionally removes prefixes covered by another prefix of the list.
	DedupCollapse DedupMode = "collapse"
)

var (
	sourceFormats = []SourceFormat{FormatPlain, FormatRegistryStatistics}
	groupNamings  = []GroupNaming{NamingPlain, NamingDashSuffix, NamingParenSuffix, NamingGlobalSequential}
	commentModes  = []CommentMode{CommentNone, CommentCIDRList}
	dedupModes    = []DedupMode{DedupString, DedupCollapse}
)
