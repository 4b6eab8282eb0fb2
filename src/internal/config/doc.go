// Package config handles configuration file parsing and validation for ikuai-ipgroups.
//
// The configuration is a TOML file with a [general] section and one or more
// [[pipeline]] sections. A pipeline describes one generated address group
// file: the IP family, the data sources (or per-region sources), the first
// record id, the chunk size and how group names, comments and address pools
// are rendered.
//
// # Example
//
//	[general]
//	output_dir = "."
//
//	[[pipeline]]
//	name = "cn_ipv4"
//	family = 4
//	start_id = 60
//	group_naming = "global-sequential"
//	base_label = "国内IPv4"
//	output_file = "ikuai_cn_ipv4group.txt"
//
//	  [[pipeline.source]]
//	  url = "https://cdn.jsdelivr.net/gh/Loyalsoldier/geoip@release/text/cn.txt"
//	  format = "plain"
//
// # Example Usage
//
//	cfg, err := config.LoadConfig("/opt/etc/ikuai-ipgroups/ikuai-ipgroups.toml")
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    log.Fatalf("%v", err)
//	}
//
// Unset optional fields are filled by ApplyDefaults when the file is loaded.
package config
