// Package main provides the proteoqc command-line tool.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var showVersion bool
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Parse()

	if showVersion {
		fmt.Printf("proteoqc version %s (%s) built %s\n", version, commit, date)
		return ExitSuccess
	}

	initConfig()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		return ExitUsage
	}

	switch args[0] {
	case "clean":
		return runClean(args[1:])
	case "classify":
		return runClassify(args[1:])
	case "export":
		return runExport(args[1:])
	case "plot":
		return runPlot(args[1:])
	case "store":
		return runStore(args[1:])
	case "config":
		return runConfig(args[1:])
	case "help":
		printUsage()
		return ExitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", args[0])
		printUsage()
		return ExitUsage
	}
}

// initConfig loads ~/.proteoqc.yaml into viper if it exists. A missing
// config file is not an error; all keys have flag-level defaults.
func initConfig() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	viper.SetConfigFile(filepath.Join(home, ".proteoqc.yaml"))
	_ = viper.ReadInConfig()
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `proteoqc - SILAC proteomics QC and export pipeline

Usage:
  proteoqc [options] <command> [arguments]

Commands:
  clean       Clean the source spreadsheet and derive fold changes
  classify    Assign QC labels and write the quality report
  export      Generate OmicsNet or PaintOmics input files
  plot        Render the chart set as PNG images
  store       Load the labeled table into a DuckDB database
  config      Manage proteoqc configuration
  help        Show this help message

Global Options:
  --version   Show version information

Examples:
  # Clean the raw workbook (run once per dataset)
  proteoqc clean -i silac_soluble_factors.xlsx -o results/

  # Label every protein and write the quality report
  proteoqc classify -i results/cleaned_proteomics_data.csv -o results/

  # Generate OmicsNet upload files from the labeled table
  proteoqc export --tool omicsnet -i results/cleaned_proteomics_data_with_QC_flags.csv -o results/omicsnet/

For more information on a command, use:
  proteoqc <command> --help
`)
}

// confidenceSet parses a comma-separated confidence list such as
// "high,medium" into canonical label values.
func confidenceSet(s string) ([]string, error) {
	var out []string
	for _, part := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "high":
			out = append(out, "High")
		case "medium":
			out = append(out, "Medium")
		case "low":
			out = append(out, "Low")
		case "":
		default:
			return nil, fmt.Errorf("unknown confidence level %q", part)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no confidence levels in %q", s)
	}
	return out, nil
}
