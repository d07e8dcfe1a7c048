package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/olehluchkiv/goabstract/internal/analyzer"
	"github.com/olehluchkiv/goabstract/internal/diagram"
	"github.com/olehluchkiv/goabstract/internal/logging"
	"github.com/olehluchkiv/goabstract/internal/resolver"
	"github.com/olehluchkiv/goabstract/internal/selfcheck"
)

// config holds the parsed command line.
type config struct {
	Input     string
	Contracts bool
	Diagram   string
	Report    string
}

func main() {
	// Flags may follow the positional module dir: goabstract . -contracts
	flags, positional := reorderArgs(os.Args[1:])

	fs := flag.NewFlagSet("goabstract", flag.ExitOnError)
	pathFlag := fs.String("path", "", "module directory for contract verification (alternative to positional argument)")
	contracts := fs.Bool("contracts", false, "also verify that each category has exactly one realization")
	diagramOut := fs.String("diagram", "", "write a Mermaid diagram of categories and realizations to file (implies -contracts)")
	reportOut := fs.String("report", "", "write the self-check report to file instead of stdout")
	logFile := fs.String("log-file", "logs/goabstract.log", "log file path (empty for stderr only)")
	logLevel := fs.String("log-level", logging.LevelFromEnv("info"), "log level (debug, info, warn, error)")

	if err := fs.Parse(flags); err != nil {
		os.Exit(1)
	}
	positional = append(positional, fs.Args()...)

	cfg := config{
		Input:     *pathFlag,
		Contracts: *contracts || *diagramOut != "",
		Diagram:   *diagramOut,
		Report:    *reportOut,
	}
	if len(positional) > 0 {
		cfg.Input = positional[0]
	}
	if cfg.Input == "" {
		cfg.Input = "."
	}

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level %q: %v\n", *logLevel, err)
		os.Exit(1)
	}

	logger, logCleanup, err := logging.Setup(*logFile, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logging: %v\n", err)
		os.Exit(1)
	}
	defer logCleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received signal, shutting down", "signal", sig)
		cancel()
	}()

	ok, err := run(ctx, cfg, os.Stdout, logger)
	if err != nil {
		logger.Error("goabstract failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logCleanup()
		os.Exit(1)
	}
	if !ok {
		logCleanup()
		os.Exit(1)
	}
}

// run executes the self-check and, when asked, the contract verification.
// It reports false when any check or contract fails.
func run(ctx context.Context, cfg config, stdout io.Writer, logger *slog.Logger) (bool, error) {
	report, err := selfcheck.Run(ctx, selfcheck.DefaultChecks(), logger)
	if err != nil {
		return false, fmt.Errorf("self-check: %w", err)
	}

	if err := writeOutput(cfg.Report, stdout, report.WriteText); err != nil {
		return false, fmt.Errorf("writing report: %w", err)
	}
	ok := report.Passed()

	if !cfg.Contracts {
		return ok, nil
	}

	dir, err := resolver.Resolve(ctx, cfg.Input, logger)
	if err != nil {
		return false, fmt.Errorf("resolve: %w", err)
	}

	expected := analyzer.DefaultExpectations()
	opts := analyzer.AnalyzeOptions{Categories: expected}
	result, err := analyzer.Analyze(ctx, dir, opts, logger)
	if err != nil {
		return false, fmt.Errorf("analyze: %w", err)
	}
	result = analyzer.Filter(result, opts)

	violations := analyzer.Verify(result, expected)
	for _, v := range violations {
		logger.Warn("contract violation", "category", v.Category, "kind", v.Kind, "detail", v.Detail)
		fmt.Fprintf(stdout, "CONTRACT FAIL  %s\n", v)
	}
	fmt.Fprintf(stdout, "%d categories verified, %d violations\n",
		len(expected), len(violations))
	ok = ok && len(violations) == 0

	if cfg.Diagram != "" {
		diagramOpts := diagram.DefaultDiagramOptions()
		diagramOpts.IncludeInit = true
		content := diagram.GenerateMermaid(result, diagramOpts)
		if err := os.WriteFile(cfg.Diagram, []byte(content), 0o644); err != nil {
			return false, fmt.Errorf("writing diagram: %w", err)
		}
		fmt.Fprintf(stdout, "Wrote diagram to %s\n", cfg.Diagram)
	}

	return ok, nil
}

// writeOutput sends write to path, or to fallback when path is empty.
func writeOutput(path string, fallback io.Writer, write func(io.Writer) error) error {
	if path == "" {
		return write(fallback)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// reorderArgs separates flags and positional arguments so flags can appear
// before or after the module directory. Flags that take a value consume the
// next arg unless written as -flag=value.
func reorderArgs(args []string) (flags, positional []string) {
	valueFlagSet := map[string]bool{
		"-path": true, "-diagram": true, "-report": true,
		"-log-file": true, "-log-level": true,
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") {
			flags = append(flags, arg)
			name := "-" + strings.TrimLeft(arg, "-")
			if !strings.Contains(arg, "=") && valueFlagSet[name] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, arg)
		}
	}
	return flags, positional
}
