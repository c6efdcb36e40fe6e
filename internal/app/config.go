package app

import "errors"

// Config holds all the configuration one compile run needs.
type Config struct {
	SnapshotPath string // assembly snapshot (.json)

	// Topology sources. Exactly one must be set.
	ScenePath  string // declarative scene document (.hcl)
	JointsPath string // legacy joint spreadsheet cell dump (.xml)
	SheetLabel string // joint sheet embedded in the snapshot

	OutDir       string
	ModelName    string
	ExportMeshes bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in the defaulted fields.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SnapshotPath == "" {
		return nil, errors.New("SnapshotPath is a required configuration field and cannot be empty")
	}

	sources := 0
	for _, s := range [...]string{cfg.ScenePath, cfg.JointsPath, cfg.SheetLabel} {
		if s != "" {
			sources++
		}
	}
	if sources != 1 {
		return nil, errors.New("exactly one topology source is required: -scene, -joints or -sheet")
	}

	if cfg.OutDir == "" {
		cfg.OutDir = "mujoco_out"
	}
	if cfg.ModelName == "" {
		cfg.ModelName = "model.xml"
	}

	return &cfg, nil
}
