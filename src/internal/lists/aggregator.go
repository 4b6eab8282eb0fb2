package lists

import (
	"cmp"
	"net/netip"
	"slices"

	"github.com/gaissmai/bart"

	"github.com/maksimkurb/ikuai-ipgroups/src/internal/config"
	apperrors "github.com/maksimkurb/ikuai-ipgroups/src/internal/errors"
)

// Aggregate merges the CIDRs of all sources of one scope into a duplicate-free,
// lexicographically sorted list. An empty result returns ErrNoData.
func Aggregate(perSource [][]string, mode config.DedupMode) ([]string, error) {
	seen := make(map[string]struct{})
	var merged []string
	for _, cidrs := range perSource {
		for _, cidr := range cidrs {
			if _, ok := seen[cidr]; ok {
				continue
			}
			seen[cidr] = struct{}{}
			merged = append(merged, cidr)
		}
	}

	if len(merged) == 0 {
		return nil, apperrors.ErrNoData
	}

	if mode == config.DedupCollapse {
		merged = collapseCovered(merged)
	}

	slices.Sort(merged)
	return merged, nil
}

// collapseCovered drops every prefix contained in a shorter prefix of the list.
// Tokens that do not parse as prefixes are kept as is.
func collapseCovered(cidrs []string) []string {
	type entry struct {
		text string
		pfx  netip.Prefix
	}

	var parsed []entry
	var result []string
	for _, cidr := range cidrs {
		pfx, err := netip.ParsePrefix(cidr)
		if err != nil {
			result = append(result, cidr)
			continue
		}
		parsed = append(parsed, entry{text: cidr, pfx: pfx.Masked()})
	}

	slices.SortStableFunc(parsed, func(a, b entry) int {
		return cmp.Compare(a.pfx.Bits(), b.pfx.Bits())
	})

	table := new(bart.Table[struct{}])
	for _, e := range parsed {
		if _, ok := table.Lookup(e.pfx.Addr()); ok {
			continue
		}
		table.Insert(e.pfx, struct{}{})
		result = append(result, e.text)
	}

	return result
}
