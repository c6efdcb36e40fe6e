package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mjcad/mjcad/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("mjcad", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
mjcad - compile a CAD assembly snapshot into a MuJoCo scene.

Usage:
  mjcad [options] SNAPSHOT_PATH

Arguments:
  SNAPSHOT_PATH
    Path to the assembly snapshot (.json) exported from the CAD tool.

Options:
`)
		flagSet.PrintDefaults()
	}

	sceneFlag := flagSet.String("scene", "", "Path to the scene document (.hcl) carrying topology and config.")
	jointsFlag := flagSet.String("joints", "", "Path to a legacy joint spreadsheet cell dump (.xml).")
	sheetFlag := flagSet.String("sheet", "", "Name of a joint sheet embedded in the snapshot.")
	outFlag := flagSet.String("o", "mujoco_out", "Output directory.")
	modelFlag := flagSet.String("model", "model.xml", "Model file name inside the output directory.")
	exportMeshesFlag := flagSet.Bool("export-meshes", false, "Write binary STL files for parts carrying mesh data.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No snapshot path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected extra argument %q", flagSet.Arg(1))}
	}
	snapshotPath := flagSet.Arg(0)
	slog.Debug("Snapshot path determined.", "path", snapshotPath)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		SnapshotPath: snapshotPath,
		ScenePath:    *sceneFlag,
		JointsPath:   *jointsFlag,
		SheetLabel:   *sheetFlag,
		OutDir:       *outFlag,
		ModelName:    *modelFlag,
		ExportMeshes: *exportMeshesFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "snapshot", config.SnapshotPath)
	return config, false, nil
}
