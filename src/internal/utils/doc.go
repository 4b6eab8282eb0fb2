// Package utils provides general-purpose helpers for ikuai-ipgroups.
//
// # Components
//
//   - Chunk: order-preserving fixed-size partitioning of a slice
//   - IPv4RangeToCIDRs: split an address range into aligned CIDR blocks
//   - ExpandTemplate / TemplateTags: {{placeholder}} expansion for URLs and file names
//   - DateStamp: next-day UTC date used in output file names
//   - Path and file helpers
//
// # Example Usage
//
//	chunks := utils.Chunk(cidrs, 1000)
//
//	url := utils.ExpandTemplate("https://example.com/{{code}}.txt",
//	    map[string]string{"code": "110000"})
//
//	cidrs, err := utils.IPv4RangeToCIDRs("1.0.0.0", 768)
//	// [1.0.0.0/23 1.0.2.0/24]
package utils
