package config

import (
	"path/filepath"
	"strconv"

	"github.com/maksimkurb/ikuai-ipgroups/src/internal/utils"
)

type Config struct {
	// ConfigVersion is the configuration file version.
	ConfigVersion uint8 `toml:"config_version" json:"config_version"`
	// General holds settings shared by all pipelines.
	General *GeneralConfig `toml:"general" json:"general"`
	// Pipelines describes the address group files to generate. Each pipeline produces one file.
	Pipelines []*PipelineConfig `toml:"pipeline,omitempty" json:"pipelines,omitempty"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// OutputDir is the directory for generated files. Relative paths are resolved against the config file directory (default: ".").
	OutputDir string `toml:"output_dir" json:"output_dir" validate:"required"`
	// TimeoutSeconds is the per-request HTTP timeout (default: 15).
	TimeoutSeconds int `toml:"timeout_seconds" json:"timeout_seconds" validate:"min=1,max=600"`
	// ChunkSize is the maximum number of entries in one address group (default: 1000).
	ChunkSize int `toml:"chunk_size" json:"chunk_size" validate:"min=1"`
	// UserAgent is sent with every source request (default: "ikuai-ipgroups").
	UserAgent string `toml:"user_agent" json:"user_agent"`
	// WriteChecksum writes an MD5 sidecar file next to each generated file.
	WriteChecksum bool `toml:"write_checksum" json:"write_checksum"`
	// APIBindAddress is the listen address of the "serve" command, e.g. 127.0.0.1:8080.
	APIBindAddress string `toml:"api_bind_address" json:"api_bind_address,omitempty" validate:"hostport_or_empty"`
}

type PipelineConfig struct {
	// Name identifies the pipeline on the command line and in the API.
	Name string `toml:"name" json:"name" validate:"required,pipeline_name"`
	// Family is the IP version (4 or 6).
	Family IPFamily `toml:"family" json:"family" validate:"required,oneof=4 6"`
	// StartID is the id of the first generated record.
	StartID int `toml:"start_id" json:"start_id" validate:"min=0"`
	// ChunkSize overrides general.chunk_size (0 = use general).
	ChunkSize int `toml:"chunk_size,omitempty" json:"chunk_size,omitempty" validate:"min=0"`
	// GroupNaming is one of: plain, dash-suffix, paren-suffix, global-sequential.
	GroupNaming GroupNaming `toml:"group_naming" json:"group_naming" validate:"required,group_naming"`
	// BaseLabel is the group name prefix for global-sequential naming and for the whole-country scope.
	BaseLabel string `toml:"base_label" json:"base_label" validate:"required"`
	// ScopeSuffix is appended to the scope label by the per-scope naming policies (default: "IP").
	ScopeSuffix string `toml:"scope_suffix,omitempty" json:"scope_suffix,omitempty"`
	// IncludePrefixInPool keeps "/len" in addr_pool entries. When false only the address is written.
	IncludePrefixInPool bool `toml:"include_prefix_in_pool" json:"include_prefix_in_pool"`
	// CommentMode is "none" (empty comment) or "cidr-list" (member CIDRs) (default: "none").
	CommentMode CommentMode `toml:"comment_mode" json:"comment_mode" validate:"comment_mode"`
	// CommentSeparator joins CIDRs in cidr-list comments, e.g. ", " or ",%20" (default: ", ").
	CommentSeparator string `toml:"comment_separator,omitempty" json:"comment_separator,omitempty"`
	// TypeField emits the "type=0" token in every record.
	TypeField bool `toml:"type_field" json:"type_field"`
	// OutputFile is the generated file name. Available variables: {{date}}, {{name}}, {{family}}.
	OutputFile string `toml:"output_file" json:"output_file" validate:"required,url_template"`
	// DedupMode is "string" (exact text) or "collapse" (also drop covered prefixes) (default: "string").
	DedupMode DedupMode `toml:"dedup_mode" json:"dedup_mode" validate:"dedup_mode"`
	// Country is the registry country code matched in registry-statistics sources (default: "CN").
	Country string `toml:"country" json:"country" validate:"required,len=2"`
	// Sources are fetched for the whole-country scope.
	Sources []*SourceConfig `toml:"source,omitempty" json:"sources,omitempty"`
	// Regions define one scope each. Mutually exclusive with sources.
	Regions []*RegionConfig `toml:"region,omitempty" json:"regions,omitempty"`
}

type SourceConfig struct {
	// URL is the source address.
	URL string `toml:"url" json:"url" validate:"required,url"`
	// Format is "plain" or "registry-statistics".
	Format SourceFormat `toml:"format" json:"format" validate:"required,source_format"`
}

type RegionConfig struct {
	// Code is the stable region code, available as {{code}} in the URL template.
	Code string `toml:"code" json:"code" validate:"required"`
	// Label is the display name used in group names.
	Label string `toml:"label" json:"label" validate:"required"`
	// SourceURLTemplate is expanded with {{code}} to get the region source URL.
	SourceURLTemplate string `toml:"source_url_template" json:"source_url_template" validate:"required,url_template"`
	// Format is "plain" or "registry-statistics" (default: "plain").
	Format SourceFormat `toml:"format" json:"format" validate:"source_format"`
}

func (c *Config) GetConfigDir() string {
	return filepath.Dir(c._absConfigFilePath)
}

func (c *Config) GetAbsOutputDir() string {
	return utils.GetAbsolutePath(c.General.OutputDir, c.GetConfigDir())
}

// GetPipeline returns the pipeline with the given name or nil.
func (c *Config) GetPipeline(name string) *PipelineConfig {
	for _, p := range c.Pipelines {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// EffectiveChunkSize returns the pipeline chunk size, falling back to the general one.
func (p *PipelineConfig) EffectiveChunkSize(general *GeneralConfig) int {
	if p.ChunkSize > 0 {
		return p.ChunkSize
	}
	if general != nil && general.ChunkSize > 0 {
		return general.ChunkSize
	}
	return DefaultChunkSize
}

// HasRegions returns true if the pipeline is split into per-region scopes.
func (p *PipelineConfig) HasRegions() bool {
	return len(p.Regions) > 0
}

// OutputFileName expands the output file template for the given date stamp.
func (p *PipelineConfig) OutputFileName(date string) string {
	return utils.ExpandTemplate(p.OutputFile, map[string]string{
		OUTPUT_TMPL_DATE:   date,
		OUTPUT_TMPL_NAME:   p.Name,
		OUTPUT_TMPL_FAMILY: strconv.Itoa(int(p.Family)),
	})
}

// SourceURL expands the region URL template.
func (r *RegionConfig) SourceURL() string {
	return utils.ExpandTemplate(r.SourceURLTemplate, map[string]string{
		REGION_TMPL_CODE: r.Code,
	})
}

// Source returns the region source as a SourceConfig.
func (r *RegionConfig) Source() *SourceConfig {
	return &SourceConfig{
		URL:    r.SourceURL(),
		Format: r.Format,
	}
}
