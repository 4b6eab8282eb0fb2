package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/maksimkurb/ikuai-ipgroups/src/internal/config"
	"github.com/maksimkurb/ikuai-ipgroups/src/internal/ipgroup"
	"github.com/maksimkurb/ikuai-ipgroups/src/internal/log"
	"github.com/maksimkurb/ikuai-ipgroups/src/internal/service"
)

func CreateCheckConfigCommand() *CheckConfigCommand {
	cc := &CheckConfigCommand{
		fs: flag.NewFlagSet("check-config", flag.ExitOnError),
	}
	cc.fs.BoolVar(&cc.dump, "dump", false, "Print the configuration with defaults applied")
	return cc
}

type CheckConfigCommand struct {
	fs   *flag.FlagSet
	cfg  *config.Config
	dump bool
	out  io.Writer
}

func (c *CheckConfigCommand) Name() string {
	return c.fs.Name()
}

func (c *CheckConfigCommand) Init(args []string, ctx *AppContext) error {
	if err := c.fs.Parse(args); err != nil {
		return err
	}
	// Keep stdout clean for the dumped TOML.
	if c.dump {
		log.SetForceStdErr(true)
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.out = ctx.stdout()

	return nil
}

func (c *CheckConfigCommand) Run() error {
	if c.dump {
		buf, err := c.cfg.SerializeConfig()
		if err != nil {
			return fmt.Errorf("failed to serialize configuration: %w", err)
		}
		_, err = c.out.Write(buf.Bytes())
		return err
	}

	// Paths are shown for today, the fetcher is never used.
	svc := service.NewPipelineService(c.cfg, nil)

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PIPELINE\tFAMILY\tSTART ID\tNAMING\tSCOPES\tCURRENT\tOUTPUT")
	for _, p := range c.cfg.Pipelines {
		scopes := 1
		if p.HasRegions() {
			scopes = len(p.Regions)
		}
		path := svc.OutputPath(p)
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%d\t%s\t%s\n",
			p.Name, p.Family, p.StartID, p.GroupNaming, scopes, currentGroups(path), path)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	log.Infof("Configuration is valid (%d pipelines, checked at %s)", len(c.cfg.Pipelines), time.Now().Format(time.RFC3339))
	return nil
}

// currentGroups reports how many address groups the existing output file
// holds: "-" when there is no file, "?" when it cannot be parsed.
func currentGroups(path string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warnf("Failed to read %s: %v", path, err)
		}
		return "-"
	}

	records, err := ipgroup.ParseRecords(string(content))
	if err != nil {
		log.Warnf("Existing file %s is not an address group file: %v", path, err)
		return "?"
	}
	return strconv.Itoa(len(records))
}
