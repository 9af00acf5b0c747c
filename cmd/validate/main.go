// Command validate checks catalog content and optionally exports it.
//
//	validate                      # check the built-in content
//	validate -f topics.yaml       # check a content file (.json, .yaml or .yml)
//	validate -e dist/topics.json  # check, then export for the web UI
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dsa-catalog/internal/catalog"
	"dsa-catalog/internal/config"
	"dsa-catalog/internal/logger"
	"dsa-catalog/internal/validation"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	flags := pflag.NewFlagSet("validate", pflag.ContinueOnError)
	flags.SetOutput(stdout)
	file := flags.StringP("file", "f", "", "content file to validate instead of the built-in catalog")
	export := flags.StringP("export", "e", "", "write the validated catalog to this path (.json, .yaml or .yml)")
	failOnWarnings := flags.Bool("fail-on-warnings", false, "treat warnings as errors")
	logLevel := flags.String("log-level", "warn", "log level")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if err := logger.Initialize(config.LoggerConfig{Level: *logLevel}); err != nil {
		fmt.Fprintf(stdout, "failed to initialize logger: %v\n", err)
		return 2
	}
	defer logger.Sync()
	log := logger.Get()

	c := catalog.Default()
	source := "built-in catalog"
	if *file != "" {
		loaded, err := loadFile(*file)
		if err != nil {
			log.Error("Failed to load content file", zap.String("file", *file), zap.Error(err))
			fmt.Fprintf(stdout, "error: %v\n", err)
			return 2
		}
		c, source = loaded, *file
	}

	report := validation.ValidateContent(c.Categories(), c.All())
	printReport(stdout, source, report)

	if !report.OK() || (*failOnWarnings && len(report.Warnings) > 0) {
		return 1
	}

	if *export != "" {
		if err := exportFile(*export, c); err != nil {
			log.Error("Failed to export catalog", zap.String("file", *export), zap.Error(err))
			fmt.Fprintf(stdout, "error: %v\n", err)
			return 2
		}
		fmt.Fprintf(stdout, "exported %d topics to %s\n", c.Len(), *export)
	}
	return 0
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func loadFile(path string) (*catalog.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if isYAML(path) {
		return catalog.ImportYAML(f)
	}
	return catalog.Import(f)
}

func exportFile(path string, c *catalog.Catalog) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if isYAML(path) {
		err = catalog.ExportYAML(f, c)
	} else {
		err = catalog.Export(f, c)
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

func printReport(w io.Writer, source string, report *validation.Report) {
	fmt.Fprintf(w, "%s: %d topics, %d quiz questions\n", source, report.TopicCount, report.QuizCount)
	for _, e := range report.Errors {
		fmt.Fprintf(w, "  ERROR   %s [%s] %s\n", e.Field, e.Code, e.Message)
	}
	for _, wr := range report.Warnings {
		fmt.Fprintf(w, "  WARNING %s [%s] %s\n", wr.Field, wr.Code, wr.Message)
	}
	if report.OK() {
		fmt.Fprintf(w, "OK (%d warnings)\n", len(report.Warnings))
	} else {
		fmt.Fprintf(w, "FAILED: %d errors, %d warnings\n", len(report.Errors), len(report.Warnings))
	}
}
