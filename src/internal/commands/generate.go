package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/maksimkurb/ikuai-ipgroups/src/internal/config"
	apperrors "github.com/maksimkurb/ikuai-ipgroups/src/internal/errors"
	"github.com/maksimkurb/ikuai-ipgroups/src/internal/lists"
	"github.com/maksimkurb/ikuai-ipgroups/src/internal/log"
	"github.com/maksimkurb/ikuai-ipgroups/src/internal/service"
)

func CreateGenerateCommand() *GenerateCommand {
	gc := &GenerateCommand{
		fs: flag.NewFlagSet("generate", flag.ExitOnError),
	}
	gc.fs.Var(&gc.pipelines, "pipeline", "Pipeline to run (repeatable, default: all)")
	gc.fs.BoolVar(&gc.strict, "strict", false, "Fail when a pipeline produced no address groups")
	return gc
}

type GenerateCommand struct {
	fs        *flag.FlagSet
	cfg       *config.Config
	pipelines stringList
	strict    bool
	fetcher   service.SourceFetcher
}

func (g *GenerateCommand) Name() string {
	return g.fs.Name()
}

func (g *GenerateCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	g.cfg = cfg

	for _, name := range g.pipelines {
		if cfg.GetPipeline(name) == nil {
			return fmt.Errorf("unknown pipeline: %s", name)
		}
	}

	if g.fetcher == nil {
		g.fetcher = lists.NewFetcher(cfg.General)
	}

	return nil
}

func (g *GenerateCommand) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reports, err := service.NewPipelineService(g.cfg, g.fetcher).RunAll(ctx, g.pipelines...)

	for _, report := range reports {
		logReport(report)
	}

	for _, conflict := range service.NewValidationService().FindIDConflicts(reports) {
		log.Warnf("ID conflict: %s", conflict)
	}

	if err != nil {
		return err
	}

	if g.strict {
		for _, report := range reports {
			if report.GroupsWritten() == 0 {
				return apperrors.NewNoDataError(report.Pipeline)
			}
		}
	}

	return nil
}

func logReport(report *service.Report) {
	for _, sc := range report.Scopes {
		log.Debugf("[%s] %s: %d/%d sources fetched, %d parsed, %d skipped, %d unique, %d groups",
			report.Pipeline, sc.Label, sc.Fetched, sc.Sources, sc.Parsed, sc.Skipped, sc.Unique, sc.Groups)
	}

	if report.GroupsWritten() == 0 {
		log.Infof("[%s] No address groups generated", report.Pipeline)
		return
	}

	log.Infof("[%s] %d groups, ids %d-%d, %d entries -> %s",
		report.Pipeline, report.GroupsWritten(), report.FirstID, report.LastID, report.TotalEntries, report.OutputPath)
}
