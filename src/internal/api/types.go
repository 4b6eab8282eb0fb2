package api

import "github.com/maksimkurb/ikuai-ipgroups/src/internal/config"

// DataResponse wraps successful responses with a "data" field.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// HealthResponse is returned by the health endpoint. It is not wrapped.
type HealthResponse struct {
	Status string `json:"status"`
}

// PipelineInfo describes one configured pipeline.
type PipelineInfo struct {
	Name        string             `json:"name"`
	Family      string             `json:"family"`
	StartID     int                `json:"start_id"`
	ChunkSize   int                `json:"chunk_size"`
	GroupNaming config.GroupNaming `json:"group_naming"`
	OutputPath  string             `json:"output_path"`
	Sources     []string           `json:"sources"`
	Regions     []string           `json:"regions,omitempty"`
}

// PipelinesResponse returns all pipelines in the configuration.
type PipelinesResponse struct {
	Pipelines []*PipelineInfo `json:"pipelines"`
}
