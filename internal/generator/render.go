package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/calumari/propset/internal/diag"
	"github.com/calumari/propset/internal/model"
)

// Result is the outcome of a Run.
type Result struct {
	Files       []*File // in container order; invalid containers have none
	Written     []string
	Diagnostics []diag.Diagnostic
	failed      bool
}

// HasErrors reports whether any error diagnostic was raised.
func (r *Result) HasErrors() bool { return r.failed }

// Load builds the container models selected by cfg, from the model file when
// one is set and from the package sources otherwise. Problems with single
// directives are reported to sink.
func Load(ctx context.Context, cfg Config, sink diag.Sink) ([]*model.Container, error) {
	var containers []*model.Container
	if cfg.ModelFile != "" {
		cs, err := loadModelFile(cfg.ModelFile)
		if err != nil {
			return nil, err
		}
		containers = cs
	} else {
		absDir, err := filepath.Abs(cfg.Dir)
		if err != nil {
			return nil, err
		}
		pkg, err := loadDir(ctx, absDir)
		if err != nil {
			return nil, err
		}
		containers = discover(pkg, sink)
	}

	if len(cfg.Containers) == 0 {
		return containers, nil
	}
	var selected []*model.Container
	var missing []string
	for _, name := range cfg.Containers {
		i := slices.IndexFunc(containers, func(c *model.Container) bool { return c.Name == name })
		if i < 0 {
			missing = append(missing, name)
			continue
		}
		selected = append(selected, containers[i])
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("containers not found: %s", strings.Join(missing, ", "))
	}
	return selected, nil
}

// Run orchestrates loading, emission and file writing. Containers are
// emitted concurrently; files are written afterwards in container order.
// Diagnostics do not make Run fail: callers inspect Result.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := ensureTemplates(); err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	var sink diag.Collector
	containers, err := Load(ctx, cfg, &sink)
	if err != nil {
		return nil, err
	}
	if len(containers) == 0 {
		return nil, errors.New("no containers found (missing //propset:bind directives?)")
	}
	if cfg.Output != "" && len(containers) > 1 {
		return nil, fmt.Errorf("--output needs exactly one container, found %d", len(containers))
	}
	log.Debug("containers loaded", "count", len(containers))

	opts := EmitOptions{Debug: cfg.Debug, Command: cfg.Command, Version: cfg.Version}
	files := make([]*File, len(containers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, c := range containers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f, ok := Emit(c, &sink, opts)
			if !ok {
				log.Debug("container skipped", "container", c.Name)
				return nil
			}
			if f.FormatErr != nil {
				log.Warn("generated code is not gofmt-clean; writing it unformatted", "container", c.Name, "err", f.FormatErr)
			}
			files[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{}
	for _, f := range files {
		if f != nil {
			res.Files = append(res.Files, f)
		}
	}
	res.Diagnostics = sink.Diagnostics()
	res.failed = sink.HasErrors()
	if cfg.DryRun {
		return res, nil
	}

	outDir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, err
	}
	for _, f := range res.Files {
		name := f.Name
		if cfg.Output != "" {
			name = cfg.Output
		}
		outPath := filepath.Join(outDir, name)
		if err := os.WriteFile(outPath, f.Source, 0o644); err != nil {
			return nil, err
		}
		log.Info("wrote file", "container", f.Container, "path", outPath)
		res.Written = append(res.Written, outPath)
	}
	return res, nil
}
