package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mjcad/mjcad/internal/assembly"
	"github.com/mjcad/mjcad/internal/ctxlog"
	"github.com/mjcad/mjcad/internal/document"
	"github.com/mjcad/mjcad/internal/frame"
	"github.com/mjcad/mjcad/internal/hcldoc"
	"github.com/mjcad/mjcad/internal/mjcf"
	"github.com/mjcad/mjcad/internal/palette"
	"github.com/mjcad/mjcad/internal/scene"
	"github.com/mjcad/mjcad/internal/sheet"
	"github.com/mjcad/mjcad/internal/snapshot"
	"github.com/mjcad/mjcad/internal/stl"
	"github.com/mjcad/mjcad/internal/topology"
)

// Run executes one compile: load the snapshot, extract the joint topology,
// compile the scene graph and write the artifacts.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	snap, err := snapshot.Load(a.config.SnapshotPath)
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}
	catalog, err := snap.Catalog()
	if err != nil {
		return fmt.Errorf("building part catalog: %w", err)
	}
	a.logger.Debug("Snapshot loaded.", "parts", catalog.Len())

	root, cfg, err := a.loadTopology(ctx, snap)
	if err != nil {
		return err
	}
	a.logger.Debug("Topology wired.", "root", root.Label)

	colors := palette.Build(catalog.Parts())
	a.logger.Debug("Palette allocated.", "materials", colors.Len())

	compiler := scene.NewCompiler(catalog, frame.NewResolver(snap), colors)
	graph, err := compiler.Compile(root, cfg)
	if err != nil {
		return fmt.Errorf("compiling scene: %w", err)
	}
	a.logger.Debug("Scene compiled.", "meshes", len(graph.Meshes))

	if err := os.MkdirAll(a.config.OutDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	modelPath := filepath.Join(a.config.OutDir, a.config.ModelName)
	if err := mjcf.WriteFile(modelPath, graph); err != nil {
		return fmt.Errorf("writing model: %w", err)
	}
	a.logger.Info("Model written.", "path", modelPath)

	if a.config.ExportMeshes {
		count, err := a.exportMeshes(snap, catalog)
		if err != nil {
			return err
		}
		a.logger.Info("Meshes exported.", "count", count, "dir", filepath.Join(a.config.OutDir, scene.MeshDir))
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// loadTopology reads the configured topology source and returns the wired
// body tree plus the scene configuration. The tabular sources carry no
// configuration of their own, so defaults apply downstream.
func (a *App) loadTopology(ctx context.Context, snap *snapshot.Snapshot) (*topology.Node, document.Config, error) {
	logger := ctxlog.FromContext(ctx)

	switch {
	case a.config.ScenePath != "":
		logger.Debug("Reading scene document.", "path", a.config.ScenePath)
		doc, err := hcldoc.ParseFile(a.config.ScenePath)
		if err != nil {
			return nil, document.Config{}, err
		}
		root, err := topology.FromDocument(doc)
		if err != nil {
			return nil, document.Config{}, err
		}
		return root, doc.Config, nil

	case a.config.JointsPath != "":
		logger.Debug("Reading joint cells.", "path", a.config.JointsPath)
		f, err := os.Open(a.config.JointsPath)
		if err != nil {
			return nil, document.Config{}, fmt.Errorf("opening joint cells: %w", err)
		}
		defer f.Close()
		cells, err := sheet.ReadCellsXML(f)
		if err != nil {
			return nil, document.Config{}, err
		}
		root, err := wireCells(cells)
		return root, document.Config{}, err

	default:
		logger.Debug("Using embedded joint sheet.", "label", a.config.SheetLabel)
		cells, ok := snap.Sheet(a.config.SheetLabel)
		if !ok {
			return nil, document.Config{}, &document.ReferenceNotFoundError{
				Label:   a.config.SheetLabel,
				Context: "the snapshot's sheet list",
			}
		}
		root, err := wireCells(cells)
		return root, document.Config{}, err
	}
}

// wireCells runs the tabular pipeline: grid, record extraction, wiring.
func wireCells(cells []sheet.Cell) (*topology.Node, error) {
	grid := sheet.NewGrid(cells)
	records, err := topology.ExtractSheet(grid)
	if err != nil {
		return nil, err
	}
	return topology.WireRecords(records)
}

// exportMeshes writes one STL file per distinct mesh asset, in catalog
// order. Parts without mesh data are skipped.
func (a *App) exportMeshes(snap *snapshot.Snapshot, catalog *assembly.Catalog) (int, error) {
	dir := filepath.Join(a.config.OutDir, scene.MeshDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("creating mesh directory: %w", err)
	}

	written := 0
	seen := make(map[string]bool)
	for _, part := range catalog.Parts() {
		if seen[part.MeshName] {
			continue
		}
		seen[part.MeshName] = true

		mesh, ok := snap.Mesh(part.MeshName)
		if !ok {
			continue
		}
		if err := stl.WriteFile(filepath.Join(dir, stl.FileName(part.MeshName)), mesh); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}
