// Package lists downloads and parses the address lists that feed the
// generated address groups.
//
// A source is either a plain list with one CIDR per line or a registry
// statistics file (pipe-delimited, as published by APNIC). Parse extracts the
// entries of one address family, Aggregate merges all sources of a scope into
// a sorted duplicate-free list.
//
//	text, err := lists.NewFetcher(cfg.General).Fetch(ctx, src.URL)
//	if err != nil {
//	    return err
//	}
//	parsed := lists.Parse(text, src.Format, config.Ipv4, "CN")
//	cidrs, err := lists.Aggregate([][]string{parsed.CIDRs}, config.DedupString)
package lists
