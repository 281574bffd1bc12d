// Package config carries the settings shared by the conversion tools.
package config

import (
	"path"
	"time"

	"github.com/adrg/xdg"

	"github.com/inspirehep/hepkit"
)

// Config for the conversion tools. TODO(config): read overrides from
// environment variables once more than one tool needs them.
type Config struct {
	// DataDir is the generic data dir for all hepkit tools, e.g. downloaded
	// documents end up in a subdirectory of it.
	DataDir string
	// Source is the provenance tag stamped on converted records, e.g. "WSP"
	// or "OSTI". Parsers fall back to source metadata when empty.
	Source string
	// Method records how the records were acquired.
	Method string
	// FilesManifest points to a JSON file mapping remote document URLs to
	// local paths, used to reconcile record documents after download.
	FilesManifest string
	// DateDayOnly truncates acquisition timestamps to the day, matching
	// orchestration layers that schedule daily harvests.
	DateDayOnly bool
	// Timestamp of the run, stamped into the acquisition source.
	Timestamp time.Time
}

// Default returns the configuration used when no flags are given.
func Default() *Config {
	return &Config{
		DataDir:   path.Join(xdg.DataHome, hepkit.AppName),
		Method:    "hepcrawl",
		Timestamp: time.Now(),
	}
}
