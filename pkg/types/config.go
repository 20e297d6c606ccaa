package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubsite/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the MTMT publication fetch stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// AuthorMTID is the numeric MTMT identifier of the subject author.
	// Publications are queried by this ID, and authorship entries
	// matching it are emphasized in rendered output.
	AuthorMTID int64 `json:"author_mtid" yaml:"author_mtid"`

	// PageSize is the number of records requested per page (default 50).
	PageSize int `json:"page_size" yaml:"page_size"`

	// RequestsPerSecond bounds the request rate against the MTMT API
	// (default 2). Pacing between page requests, not a retry tier.
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`
}

// SiteConfig holds settings for the document regeneration stage.
type SiteConfig struct {
	// IndexPath is the target HTML document (default "index.html").
	IndexPath string `json:"index_path" yaml:"index_path"`

	// MarkerStart and MarkerEnd delimit the regenerated region in the
	// target document. Both markers are re-emitted on every run.
	MarkerStart string `json:"marker_start" yaml:"marker_start"`
	MarkerEnd   string `json:"marker_end" yaml:"marker_end"`
}
