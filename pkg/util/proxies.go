package util

import (
	"fmt"
	"net/netip"
	"strings"
)

// ParseProxies turns IPs and CIDRs into prefixes, accepting the same forms
// as gin's SetTrustedProxies
func ParseProxies(list []string) ([]netip.Prefix, error) {
	out := make([]netip.Prefix, 0, len(list))
	for _, entry := range list {
		if strings.Contains(entry, "/") {
			p, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, fmt.Errorf("invalid proxy CIDR %q, %w", entry, err)
			}

			out = append(out, p.Masked())
			continue
		}

		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy address %q, %w", entry, err)
		}

		addr = addr.Unmap()
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}

	return out, nil
}

// IsTrustedPeer reports whether remoteIP falls inside one of the prefixes
func IsTrustedPeer(remoteIP string, trusted []netip.Prefix) bool {
	addr, err := netip.ParseAddr(remoteIP)
	if err != nil {
		return false
	}

	addr = addr.Unmap()
	for _, p := range trusted {
		if p.Contains(addr) {
			return true
		}
	}

	return false
}
