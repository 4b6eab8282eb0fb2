package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/maksimkurb/ikuai-ipgroups/src/internal/config"
	apperrors "github.com/maksimkurb/ikuai-ipgroups/src/internal/errors"
	"github.com/maksimkurb/ikuai-ipgroups/src/internal/service"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool
	// Stdout receives command output. Defaults to os.Stdout.
	Stdout io.Writer
}

func (c *AppContext) stdout() io.Writer {
	if c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}

// loadAndValidateConfigOrFail loads configuration from file and validates it,
// including the checks that span pipelines.
func loadAndValidateConfigOrFail(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, apperrors.NewConfigError("failed to load configuration", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, apperrors.NewValidationError("configuration validation failed", err)
	}

	if err := service.NewValidationService().ValidateConfig(cfg); err != nil {
		return nil, apperrors.NewValidationError("configuration validation failed", err)
	}

	return cfg, nil
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string {
	return fmt.Sprint(*s)
}

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}
