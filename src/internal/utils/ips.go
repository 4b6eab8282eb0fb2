package utils

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"net/netip"
)

// IPv4RangeToCIDRs splits the range of count addresses starting at start into
// the minimal list of aligned CIDR blocks, in ascending order.
func IPv4RangeToCIDRs(start string, count uint64) ([]string, error) {
	addr, err := netip.ParseAddr(start)
	if err != nil || !addr.Is4() {
		return nil, fmt.Errorf("invalid IPv4 address: %s", start)
	}
	if count == 0 {
		return nil, fmt.Errorf("empty range at %s", start)
	}

	b := addr.As4()
	first := uint64(binary.BigEndian.Uint32(b[:]))
	if first+count > 1<<32 {
		return nil, fmt.Errorf("range %s+%d overflows the IPv4 space", start, count)
	}

	var cidrs []string
	for count > 0 {
		// Largest block aligned on first that still fits in count.
		size := uint64(1) << 32
		if first != 0 {
			size = uint64(1) << bits.TrailingZeros64(first)
		}
		for size > count {
			size >>= 1
		}

		var ip [4]byte
		binary.BigEndian.PutUint32(ip[:], uint32(first))
		prefixLen := 32 - bits.TrailingZeros64(size)
		cidrs = append(cidrs, netip.PrefixFrom(netip.AddrFrom4(ip), prefixLen).String())

		first += size
		count -= size
	}

	return cidrs, nil
}
