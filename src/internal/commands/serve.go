package commands

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/maksimkurb/ikuai-ipgroups/src/internal/api"
	"github.com/maksimkurb/ikuai-ipgroups/src/internal/config"
	"github.com/maksimkurb/ikuai-ipgroups/src/internal/lists"
	"github.com/maksimkurb/ikuai-ipgroups/src/internal/log"
	"github.com/maksimkurb/ikuai-ipgroups/src/internal/service"
)

const defaultBindAddress = "127.0.0.1:8080"

func CreateServeCommand() *ServeCommand {
	sc := &ServeCommand{
		fs: flag.NewFlagSet("serve", flag.ExitOnError),
	}
	sc.fs.StringVar(&sc.bindAddr, "bind", "", "Listen address (default: general.api_bind_address or "+defaultBindAddress+")")
	return sc
}

type ServeCommand struct {
	fs         *flag.FlagSet
	bindAddr   string
	configPath string
}

func (s *ServeCommand) Name() string {
	return s.fs.Name()
}

func (s *ServeCommand) Init(args []string, ctx *AppContext) error {
	if err := s.fs.Parse(args); err != nil {
		return err
	}

	// Fail early on a broken config, requests reload it anyway.
	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	s.configPath = ctx.ConfigPath

	if s.bindAddr == "" {
		s.bindAddr = cfg.General.APIBindAddress
	}
	if s.bindAddr == "" {
		s.bindAddr = defaultBindAddress
	}

	return nil
}

func (s *ServeCommand) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router := api.NewRouter(
		func() (*config.Config, error) { return loadAndValidateConfigOrFail(s.configPath) },
		func(general *config.GeneralConfig) service.SourceFetcher { return lists.NewFetcher(general) },
	)

	runner := NewRestartableRunner(RunnerConfig{Name: "API server", MaxRestarts: 5}, func(ctx context.Context) error {
		server := api.NewServer(s.bindAddr, router)

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start()
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Stop(shutdownCtx); err != nil {
				log.Warnf("Failed to stop API server: %v", err)
			}
			return ctx.Err()
		}
	})

	return runner.Run(ctx)
}
