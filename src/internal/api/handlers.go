package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/maksimkurb/ikuai-ipgroups/src/internal/config"
	apperrors "github.com/maksimkurb/ikuai-ipgroups/src/internal/errors"
	"github.com/maksimkurb/ikuai-ipgroups/src/internal/log"
	"github.com/maksimkurb/ikuai-ipgroups/src/internal/service"
)

// ConfigLoader returns the current validated configuration.
type ConfigLoader func() (*config.Config, error)

// FetcherFactory creates the source fetcher for a configuration.
type FetcherFactory func(general *config.GeneralConfig) service.SourceFetcher

// Handler manages all API endpoints and dependencies.
type Handler struct {
	loadConfig ConfigLoader
	newFetcher FetcherFactory
	now        func() time.Time
}

// NewHandler creates a new API handler.
func NewHandler(loadConfig ConfigLoader, newFetcher FetcherFactory) *Handler {
	return &Handler{
		loadConfig: loadConfig,
		newFetcher: newFetcher,
		now:        time.Now,
	}
}

func (h *Handler) pipelineService(cfg *config.Config) *service.PipelineService {
	return service.NewPipelineService(cfg, h.newFetcher(cfg.General)).WithClock(h.now)
}

// writeJSON writes a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeJSONData writes a successful JSON response with data.
func writeJSONData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, DataResponse{Data: data})
}

// CheckHealth reports that the server is up.
// GET /api/v1/health
func (h *Handler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// GetPipelines returns all configured pipelines.
// GET /api/v1/pipelines
func (h *Handler) GetPipelines(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.loadConfig()
	if err != nil {
		WriteConfigError(w, "Failed to load configuration: "+err.Error())
		return
	}

	svc := h.pipelineService(cfg)
	pipelines := make([]*PipelineInfo, 0, len(cfg.Pipelines))
	for _, p := range cfg.Pipelines {
		info := &PipelineInfo{
			Name:        p.Name,
			Family:      p.Family.String(),
			StartID:     p.StartID,
			ChunkSize:   p.EffectiveChunkSize(cfg.General),
			GroupNaming: p.GroupNaming,
			OutputPath:  svc.OutputPath(p),
			Sources:     make([]string, 0, len(p.Sources)+len(p.Regions)),
		}
		for _, src := range p.Sources {
			info.Sources = append(info.Sources, src.URL)
		}
		for _, region := range p.Regions {
			info.Regions = append(info.Regions, region.Code)
			info.Sources = append(info.Sources, region.SourceURL())
		}
		pipelines = append(pipelines, info)
	}

	writeJSONData(w, PipelinesResponse{Pipelines: pipelines})
}

// RenderPipeline fetches the sources of a pipeline and returns the import
// file it would write, without writing it.
// GET /api/v1/pipelines/{name}/render
func (h *Handler) RenderPipeline(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	cfg, err := h.loadConfig()
	if err != nil {
		WriteConfigError(w, "Failed to load configuration: "+err.Error())
		return
	}

	p := cfg.GetPipeline(name)
	if p == nil {
		WriteNotFound(w, "Pipeline "+name)
		return
	}

	content, report, err := h.pipelineService(cfg).Render(r.Context(), p)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoData) {
			details := make(map[string]interface{}, len(report.Scopes))
			for _, sc := range report.Scopes {
				details[sc.Label] = sc
			}
			WriteNoData(w, "Pipeline "+name+" produced no address groups", details)
			return
		}
		log.Errorf("Failed to render pipeline %s: %v", name, err)
		WriteInternalError(w, "Failed to render pipeline: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Groups-Count", strconv.Itoa(report.GroupsWritten()))
	w.Header().Set("X-Entries-Count", strconv.Itoa(report.TotalEntries))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(content))
}
