// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "assignment-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for retrieving the text of external links.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxRetries is the number of retries on HTTP 429 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// MaxBytes caps the size of a downloaded page (default 2 MiB).
	MaxBytes int64 `json:"max_bytes" yaml:"max_bytes"`

	// Concurrency bounds parallel downloads in a batch (default 4).
	Concurrency int `json:"concurrency" yaml:"concurrency"`

	// LMSHost is the host (with port, if any) of the LMS, e.g.
	// "canvas.example.edu". The LMS token is only sent to https URLs on
	// this host.
	LMSHost string `json:"lms_host" yaml:"lms_host"`

	// LMSToken is an optional bearer token so that links hosted on the LMS
	// itself can be read. It is passed explicitly, never read from
	// process-wide state, and never sent when LMSHost is empty.
	LMSToken string `json:"-" yaml:"-"`
}

// StoreConfig holds settings for the draft store.
type StoreConfig struct {
	// DataDir is the directory holding the SQLite database and exports.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// MaxResults is the default maximum number of drafts listed (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// LogConfig holds logging settings for the HTTP server.
type LogConfig struct {
	// Level is a logrus level name: debug, info, warn, error.
	Level string `json:"level" yaml:"level"`
}

// ServerConfig holds settings for the HTTP routing layer.
type ServerConfig struct {
	// Addr is the listen address (e.g. ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`

	Log   LogConfig   `json:"log" yaml:"log"`
	Store StoreConfig `json:"store" yaml:"store"`
	Fetch FetchConfig `json:"fetch" yaml:"fetch"`
}
