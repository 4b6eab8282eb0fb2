// Package service orchestrates address group generation.
//
// PipelineService drives one pipeline end to end: every scope (the whole
// country or each configured region) is fetched, parsed, aggregated, chunked
// and formatted, then all records are written into the pipeline output file.
// Fetch failures and empty scopes are logged and skipped. Only I/O failures
// abort a pipeline.
//
//	svc := service.NewPipelineService(cfg, lists.NewFetcher(cfg.General))
//	reports, err := svc.RunAll(ctx)
//	if err != nil {
//	    log.Errorf("%v", err)
//	}
//
// ValidationService checks the configuration as a whole before anything
// is fetched.
package service
