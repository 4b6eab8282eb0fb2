// Package ipgroup turns aggregated CIDR chunks into iKuai address group
// records and writes them as an import file.
//
// One record is one line:
//
//	id=60 comment= group_name=国内IPv4-1 addr_pool=1.0.1.0/24,1.0.2.0/23
//
// With the type field enabled the token "type=0" is placed before group_name.
// Lines are joined with "\n" and the file has no trailing newline.
package ipgroup
