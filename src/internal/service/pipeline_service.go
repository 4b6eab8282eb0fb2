package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/maksimkurb/ikuai-ipgroups/src/internal/config"
	apperrors "github.com/maksimkurb/ikuai-ipgroups/src/internal/errors"
	"github.com/maksimkurb/ikuai-ipgroups/src/internal/ipgroup"
	"github.com/maksimkurb/ikuai-ipgroups/src/internal/lists"
	"github.com/maksimkurb/ikuai-ipgroups/src/internal/log"
	"github.com/maksimkurb/ikuai-ipgroups/src/internal/utils"
)

// SourceFetcher downloads the text of one source.
type SourceFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// ScopeReport holds the per-scope counters of one run.
type ScopeReport struct {
	Code    string `json:"code,omitempty"`
	Label   string `json:"label"`
	Sources int    `json:"sources"`
	Fetched int    `json:"fetched"`
	Parsed  int    `json:"parsed"`
	Skipped int    `json:"skipped"`
	Unique  int    `json:"unique"`
	Groups  int    `json:"groups"`
	Err     error  `json:"-"`
}

// Report summarizes one pipeline run.
type Report struct {
	Pipeline     string                       `json:"pipeline"`
	OutputPath   string                       `json:"output_path,omitempty"`
	Records      []ipgroup.AddressGroupRecord `json:"-"`
	FirstID      int                          `json:"first_id"`
	LastID       int                          `json:"last_id"`
	Scopes       []ScopeReport                `json:"scopes"`
	TotalEntries int                          `json:"total_entries"`
	Changed      bool                         `json:"changed"`
}

// GroupsWritten returns the number of generated records.
func (r *Report) GroupsWritten() int {
	return len(r.Records)
}

// PipelineService generates address group files for the configured pipelines.
type PipelineService struct {
	cfg     *config.Config
	fetcher SourceFetcher
	now     func() time.Time
}

// NewPipelineService creates a pipeline service.
//
// Parameters:
//   - cfg: loaded and validated configuration
//   - fetcher: source downloader, usually *lists.Fetcher
func NewPipelineService(cfg *config.Config, fetcher SourceFetcher) *PipelineService {
	return &PipelineService{
		cfg:     cfg,
		fetcher: fetcher,
		now:     time.Now,
	}
}

// WithClock replaces the clock used for date-stamped file names.
func (s *PipelineService) WithClock(now func() time.Time) *PipelineService {
	s.now = now
	return s
}

// RunAll runs the named pipelines, or all of them when no name is given.
// Pipelines run independently: a failure in one does not stop the others.
// Pipelines without data are logged and are not reported as errors.
func (s *PipelineService) RunAll(ctx context.Context, names ...string) ([]*Report, error) {
	pipelines, err := s.selectPipelines(names)
	if err != nil {
		return nil, err
	}

	var reports []*Report
	var errs []error
	for _, p := range pipelines {
		report, err := s.Run(ctx, p)
		if report != nil {
			reports = append(reports, report)
		}
		if err == nil {
			continue
		}
		if errors.Is(err, apperrors.ErrNoData) {
			log.Warnf("Pipeline %s produced no data, nothing was written", p.Name)
			continue
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return reports, ctxErr
		}
		log.Errorf("Pipeline %s failed: %v", p.Name, err)
		errs = append(errs, fmt.Errorf("pipeline %s: %w", p.Name, err))
	}

	return reports, errors.Join(errs...)
}

// Run generates the output file of one pipeline.
// A run without any record writes nothing and returns ErrNoData with the report.
func (s *PipelineService) Run(ctx context.Context, p *config.PipelineConfig) (*Report, error) {
	report, err := s.build(ctx, p)
	if err != nil {
		return report, err
	}

	report.OutputPath = s.OutputPath(p)
	result, err := ipgroup.WriteFile(report.Records, report.OutputPath, ipgroup.WriteOptions{
		TypeField:     p.TypeField,
		WriteChecksum: s.cfg.General.WriteChecksum,
	})
	if err != nil {
		return report, err
	}
	report.Changed = result.Changed

	if result.Changed {
		log.Infof("Wrote %d groups (ids %d-%d, %d entries) to %s",
			report.GroupsWritten(), report.FirstID, report.LastID, report.TotalEntries, report.OutputPath)
	} else {
		log.Infof("Wrote %d groups to %s (content unchanged)", report.GroupsWritten(), report.OutputPath)
	}
	return report, nil
}

// Render builds the records of a pipeline and returns the file content without writing it.
func (s *PipelineService) Render(ctx context.Context, p *config.PipelineConfig) (string, *Report, error) {
	report, err := s.build(ctx, p)
	if err != nil {
		return "", report, err
	}
	return ipgroup.Render(report.Records, p.TypeField), report, nil
}

// OutputPath returns the file the pipeline is written to for the current date.
func (s *PipelineService) OutputPath(p *config.PipelineConfig) string {
	name := p.OutputFileName(utils.DateStamp(s.now()))
	return utils.GetAbsolutePath(name, s.cfg.GetAbsOutputDir())
}

type scope struct {
	code    string
	label   string
	sources []*config.SourceConfig
}

func pipelineScopes(p *config.PipelineConfig) []scope {
	if !p.HasRegions() {
		return []scope{{label: p.BaseLabel, sources: p.Sources}}
	}

	scopes := make([]scope, 0, len(p.Regions))
	for _, r := range p.Regions {
		scopes = append(scopes, scope{
			code:    r.Code,
			label:   r.Label,
			sources: []*config.SourceConfig{r.Source()},
		})
	}
	return scopes
}

// build runs every scope of the pipeline in configured order. IDs and the
// group ordinal keep counting across scopes, skipped scopes consume neither.
func (s *PipelineService) build(ctx context.Context, p *config.PipelineConfig) (*Report, error) {
	log.Infof("Running pipeline %s (%s)...", p.Name, p.Family)

	report := &Report{Pipeline: p.Name}
	formatter := ipgroup.NewFormatter(p)
	chunkSize := p.EffectiveChunkSize(s.cfg.General)
	nextID := p.StartID
	ordinal := 0

	for _, sc := range pipelineScopes(p) {
		scopeReport, cidrs, err := s.collectScope(ctx, p, sc)
		if err != nil {
			return report, err
		}

		if len(cidrs) > 0 {
			chunks := utils.Chunk(cidrs, chunkSize)
			records := formatter.Format(chunks, nextID, sc.label, ordinal)
			nextID += len(records)
			ordinal += len(records)

			scopeReport.Groups = len(records)
			report.Records = append(report.Records, records...)
			report.TotalEntries += len(cidrs)
			log.Infof("Scope %s: %d unique entries in %d groups", sc.label, len(cidrs), len(records))
		}

		report.Scopes = append(report.Scopes, scopeReport)
	}

	if len(report.Records) == 0 {
		return report, apperrors.NewNoDataError(p.Name)
	}

	report.FirstID = report.Records[0].ID
	report.LastID = report.Records[len(report.Records)-1].ID
	return report, nil
}

// collectScope fetches and aggregates all sources of a scope. Fetch failures
// and empty results are recorded in the scope report. Only cancellation of
// ctx is returned as an error.
func (s *PipelineService) collectScope(ctx context.Context, p *config.PipelineConfig, sc scope) (ScopeReport, []string, error) {
	scopeReport := ScopeReport{Code: sc.code, Label: sc.label, Sources: len(sc.sources)}

	perSource := make([][]string, 0, len(sc.sources))
	for _, src := range sc.sources {
		log.Infof("Fetching %s...", src.URL)
		text, err := s.fetcher.Fetch(ctx, src.URL)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return scopeReport, nil, ctxErr
			}
			log.Warnf("Skipping source %s: %v", src.URL, err)
			scopeReport.Err = err
			continue
		}
		scopeReport.Fetched++

		parsed := lists.Parse(text, src.Format, p.Family, p.Country)
		log.Debugf("Parsed %d entries from %s (%d lines skipped)", len(parsed.CIDRs), src.URL, parsed.Skipped)
		scopeReport.Parsed += len(parsed.CIDRs)
		scopeReport.Skipped += parsed.Skipped
		perSource = append(perSource, parsed.CIDRs)
	}

	cidrs, err := lists.Aggregate(perSource, p.DedupMode)
	if err != nil {
		log.Warnf("Skipping scope %s: no entries collected", sc.label)
		scopeReport.Err = apperrors.NewNoDataError(sc.label)
		return scopeReport, nil, nil
	}

	scopeReport.Unique = len(cidrs)
	return scopeReport, cidrs, nil
}

func (s *PipelineService) selectPipelines(names []string) ([]*config.PipelineConfig, error) {
	if len(names) == 0 {
		return s.cfg.Pipelines, nil
	}

	pipelines := make([]*config.PipelineConfig, 0, len(names))
	for _, name := range names {
		p := s.cfg.GetPipeline(name)
		if p == nil {
			return nil, apperrors.NewConfigError(fmt.Sprintf("unknown pipeline: %s", name), nil)
		}
		pipelines = append(pipelines, p)
	}
	return pipelines, nil
}
