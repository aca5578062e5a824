// Command propsetgen generates SetProperty<Record> dispatch methods that set
// a struct field by name from its textual value.
//
// Typical use is through go:generate next to a container type:
//
//	//go:generate go run github.com/calumari/propset/cmd/propsetgen
//
//	//propset:bind MyObject
//	type Helper struct{}
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/davecgh/go-spew/spew"

	"github.com/calumari/propset/internal/diag"
	"github.com/calumari/propset/internal/generator"
)

type CLI struct {
	Gen     GenCmd     `cmd:"" default:"withargs" help:"Generate dispatch methods (default command)."`
	Version VersionCmd `cmd:"" help:"Print version information."`
}

// streams is bound into command Run methods.
type streams struct {
	Out io.Writer
	Err io.Writer
}

type VersionCmd struct{}

func (c *VersionCmd) Run(s *streams) error {
	_, err := fmt.Fprintln(s.Out, deriveVersion())
	return err
}

type GenCmd struct {
	Dir         string   `help:"Package directory to scan and write into." default:"."`
	Model       string   `help:"Read containers from a YAML model file instead of scanning sources." type:"existingfile"`
	Container   []string `help:"Only generate these containers." sep:","`
	Output      string   `help:"Output filename (only with a single container)."`
	Debug       bool     `help:"Annotate generated arms with their parsing strategy."`
	Diagnostics string   `help:"Diagnostics format." enum:"text,json" default:"text"`
	DumpModel   bool     `help:"Print the loaded model and exit without writing." name:"dump-model"`
	DryRun      bool     `help:"Generate but do not write files." name:"dry-run"`
	LogLevel    string   `help:"Log level." enum:"debug,info,warn,error" default:"warn" name:"log-level"`
	LogFormat   string   `help:"Log format." enum:"text,json" default:"text" name:"log-format"`
}

// errDiagnostics makes the process fail after every file was written.
var errDiagnostics = errors.New("generation reported errors")

func (c *GenCmd) Run(s *streams) error {
	stdout, stderr := s.Out, s.Err
	logger := newLogger(stderr, c.LogLevel, c.LogFormat)
	cfg := generator.Config{
		Dir:        c.Dir,
		ModelFile:  c.Model,
		Containers: c.Container,
		Output:     c.Output,
		Debug:      c.Debug,
		DryRun:     c.DryRun,
		Command:    c.command(),
		Version:    deriveVersion(),
		Logger:     logger,
	}
	ctx := context.Background()

	if c.DumpModel {
		var sink diag.Collector
		containers, err := generator.Load(ctx, cfg, &sink)
		if err != nil {
			return err
		}
		spew.Fdump(stdout, containers)
		return diag.Write(stderr, diag.Format(c.Diagnostics), sink.Diagnostics())
	}

	res, err := generator.Run(ctx, cfg)
	if err != nil {
		return err
	}
	if err := diag.Write(stderr, diag.Format(c.Diagnostics), res.Diagnostics); err != nil {
		return err
	}
	if res.HasErrors() {
		return errDiagnostics
	}
	return nil
}

// command builds a canonical command line instead of raw argv (which may
// include build cache paths).
func (c *GenCmd) command() string {
	parts := []string{"propsetgen"}
	if c.Dir != "." {
		parts = append(parts, "--dir="+c.Dir)
	}
	if c.Model != "" {
		parts = append(parts, "--model="+c.Model)
	}
	if len(c.Container) > 0 {
		parts = append(parts, "--container="+strings.Join(c.Container, ","))
	}
	if c.Output != "" {
		parts = append(parts, "--output="+c.Output)
	}
	if c.Debug {
		parts = append(parts, "--debug")
	}
	return strings.Join(parts, " ")
}

func newLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func newParser(cli *CLI, stdout, stderr io.Writer, exit func(int)) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("propsetgen"),
		kong.Description("Generate set-property-by-name dispatch methods for Go structs."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(exit),
	)
}

func run(args []string, stdout, stderr io.Writer) int {
	cli := &CLI{}
	code := -1
	parser, err := newParser(cli, stdout, stderr, func(c int) { code = c })
	if err != nil {
		fmt.Fprintf(stderr, "propsetgen: %v\n", err)
		return 2
	}
	kctx, err := parser.Parse(args)
	if code >= 0 {
		return code
	}
	if err != nil {
		parser.Errorf("%v", err)
		return 2
	}
	if err := kctx.Run(&streams{Out: stdout, Err: stderr}); err != nil {
		fmt.Fprintf(stderr, "propsetgen: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
