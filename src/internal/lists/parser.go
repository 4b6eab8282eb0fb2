package lists

import (
	"strconv"
	"strings"

	"github.com/maksimkurb/ikuai-ipgroups/src/internal/config"
	"github.com/maksimkurb/ikuai-ipgroups/src/internal/log"
	"github.com/maksimkurb/ikuai-ipgroups/src/internal/utils"
)

// registryMinFields is the number of fields in a delegated-stats record line:
// registry|cc|type|start|value|date|status
const registryMinFields = 7

// ParseResult holds the valid CIDRs of one source in input order.
// Skipped counts dropped lines; comments and blank lines are not counted.
type ParseResult struct {
	CIDRs   []string
	Skipped int
}

// Parse extracts the CIDRs of the given family from source text.
// Lines that do not qualify are dropped, Parse never fails.
func Parse(text string, format config.SourceFormat, family config.IPFamily, country string) ParseResult {
	var result ParseResult

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var cidrs []string
		var ok bool
		if format == config.FormatRegistryStatistics {
			cidrs, ok = parseRegistryLine(line, family, country)
		} else {
			cidrs, ok = parsePlainLine(line, family)
		}

		if !ok {
			result.Skipped++
			continue
		}
		result.CIDRs = append(result.CIDRs, cidrs...)
	}

	return result
}

func parsePlainLine(line string, family config.IPFamily) ([]string, bool) {
	if !ValidateCIDR(line, family) {
		return nil, false
	}
	if family == config.Ipv6 {
		line = strings.ToLower(line)
	}
	return []string{line}, true
}

// parseRegistryLine handles one line of the registry statistics format.
// IPv6 records carry a prefix length in the value field, IPv4 records carry
// an address count that is split into aligned blocks.
func parseRegistryLine(line string, family config.IPFamily, country string) ([]string, bool) {
	fields := strings.Split(line, "|")
	if len(fields) < registryMinFields {
		return nil, false
	}
	if fields[1] != country || fields[2] != family.RegistryTag() {
		return nil, false
	}

	start := strings.TrimSpace(fields[3])
	value := strings.TrimSpace(fields[4])

	if family == config.Ipv6 {
		return []string{strings.ToLower(start + "/" + value)}, true
	}

	count, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return nil, false
	}
	cidrs, err := utils.IPv4RangeToCIDRs(start, count)
	if err != nil {
		log.Debugf("Skipping registry record %q: %v", line, err)
		return nil, false
	}
	return cidrs, true
}
