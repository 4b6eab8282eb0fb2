package config

import (
	"testing"
)

func TestConfig_GetAbsOutputDir(t *testing.T) {
	cfg := &Config{
		General: &GeneralConfig{
			OutputDir: "groups",
		},
		_absConfigFilePath: "/home/user/config/ikuai-ipgroups.toml",
	}

	if got := cfg.GetAbsOutputDir(); got != "/home/user/config/groups" {
		t.Errorf("Expected /home/user/config/groups, got %s", got)
	}

	cfg.General.OutputDir = "/srv/ikuai"
	if got := cfg.GetAbsOutputDir(); got != "/srv/ikuai" {
		t.Errorf("Expected absolute output dir to be kept, got %s", got)
	}
}

func TestPipelineConfig_EffectiveChunkSize(t *testing.T) {
	general := &GeneralConfig{ChunkSize: 500}

	tests := []struct {
		name     string
		pipeline *PipelineConfig
		general  *GeneralConfig
		expected int
	}{
		{"pipeline override", &PipelineConfig{ChunkSize: 200}, general, 200},
		{"general value", &PipelineConfig{}, general, 500},
		{"built-in default", &PipelineConfig{}, nil, DefaultChunkSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pipeline.EffectiveChunkSize(tt.general); got != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestPipelineConfig_OutputFileName(t *testing.T) {
	tests := []struct {
		name     string
		pipeline *PipelineConfig
		expected string
	}{
		{
			name:     "fixed",
			pipeline: &PipelineConfig{Name: "cn_ipv6", Family: Ipv6, OutputFile: "ikuai_cn_ipv6group.txt"},
			expected: "ikuai_cn_ipv6group.txt",
		},
		{
			name:     "date stamped",
			pipeline: &PipelineConfig{Name: "cn_ipv4", Family: Ipv4, OutputFile: "domestic_ikuai_ipgroup-{{date}}.txt"},
			expected: "domestic_ikuai_ipgroup-20261015.txt",
		},
		{
			name:     "name and family",
			pipeline: &PipelineConfig{Name: "cn", Family: Ipv6, OutputFile: "{{name}}_ipv{{family}}.txt"},
			expected: "cn_ipv6.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pipeline.OutputFileName("20261015"); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestRegionConfig_Source(t *testing.T) {
	region := &RegionConfig{
		Code:              "440000",
		Label:             "广东",
		SourceURLTemplate: "https://example.com/cncity/{{code}}.txt",
		Format:            FormatPlain,
	}

	src := region.Source()
	if src.URL != "https://example.com/cncity/440000.txt" {
		t.Errorf("Unexpected source url: %s", src.URL)
	}
	if src.Format != FormatPlain {
		t.Errorf("Unexpected source format: %s", src.Format)
	}
}

func TestIPFamily(t *testing.T) {
	if Ipv4.String() != "IPv4" || Ipv6.String() != "IPv6" || IPFamily(5).String() != "unknown" {
		t.Error("Unexpected family names")
	}
	if Ipv4.RegistryTag() != "ipv4" || Ipv6.RegistryTag() != "ipv6" {
		t.Error("Unexpected registry tags")
	}
}
