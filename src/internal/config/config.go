package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pelletier/go-toml/v2"

	"github.com/maksimkurb/ikuai-ipgroups/src/internal/log"
)

var (
	pipelineNameRegexp = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

const (
	CurrentConfigVersion = 1

	DefaultOutputDir        = "."
	DefaultTimeoutSeconds   = 15
	DefaultChunkSize        = 1000
	DefaultUserAgent        = "ikuai-ipgroups"
	DefaultCountry          = "CN"
	DefaultScopeSuffix      = "IP"
	DefaultCommentSeparator = ", "
)

const (
	OUTPUT_TMPL_DATE   = "date"
	OUTPUT_TMPL_NAME   = "name"
	OUTPUT_TMPL_FAMILY = "family"
	REGION_TMPL_CODE   = "code"
)

func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %v", err)
		} else {
			configFile = path
		}
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Errorf("Configuration file not found: %s", configFile)
			return nil, fmt.Errorf("configuration file not found: %s", configFile)
		}
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	config, err := ParseConfig(content)
	if err != nil {
		return nil, err
	}
	config._absConfigFilePath = configFile

	log.Debugf("Configuration file path: %s", configFile)
	log.Debugf("Output directory: %s", config.GetAbsOutputDir())

	return config, nil
}

// ParseConfig decodes TOML content and fills in defaults. The config directory
// is the current working directory until LoadConfig sets the file path.
func ParseConfig(content []byte) (*Config, error) {
	var config Config
	if err := toml.Unmarshal(content, &config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf("%s", derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, fmt.Errorf("failed to parse config file at line %d, column %d: %v", row, col, err)
		}
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	config.ApplyDefaults()
	return &config, nil
}

// ApplyDefaults fills unset optional fields with their default values.
func (c *Config) ApplyDefaults() {
	if c.ConfigVersion == 0 {
		c.ConfigVersion = CurrentConfigVersion
	}
	if c.General == nil {
		c.General = &GeneralConfig{}
	}

	g := c.General
	if g.OutputDir == "" {
		g.OutputDir = DefaultOutputDir
	}
	if g.TimeoutSeconds == 0 {
		g.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if g.ChunkSize == 0 {
		g.ChunkSize = DefaultChunkSize
	}
	if g.UserAgent == "" {
		g.UserAgent = DefaultUserAgent
	}

	for _, p := range c.Pipelines {
		if p == nil {
			continue
		}
		if p.ScopeSuffix == "" {
			p.ScopeSuffix = DefaultScopeSuffix
		}
		if p.CommentMode == "" {
			p.CommentMode = CommentNone
		}
		if p.CommentSeparator == "" {
			p.CommentSeparator = DefaultCommentSeparator
		}
		if p.DedupMode == "" {
			p.DedupMode = DedupString
		}
		if p.Country == "" {
			p.Country = DefaultCountry
		}
		for _, r := range p.Regions {
			if r != nil && r.Format == "" {
				r.Format = FormatPlain
			}
		}
	}
}

func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}
