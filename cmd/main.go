package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/belfhi/FP-Spektren/controller"
	"github.com/belfhi/FP-Spektren/utils"
)

// version is set at build time via -ldflags.
var version = "dev"

var flags struct {
	basename   string
	outputDir  string
	configPath string
	references bool
	sort       bool
	logLevel   string
	logFile    string
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ooextract [-f basename] inputFile...",
		Short: "Extract spectra and metadata from zipped-XML spectrometer files",
		Long: "ooextract reads the ps_* member of every input archive and writes\n" +
			"<basename>.csv, <basename>-source.csv, <basename>-metadata.txt,\n" +
			"<basename>-lambda.csv and <basename>-times.csv.",
		Args:          cobra.MinimumNArgs(1),
		RunE:          runExtract,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}
	f := cmd.Flags()
	f.StringVarP(&flags.basename, "file", "f", "spectra", "Output file basename")
	f.StringVarP(&flags.outputDir, "output-dir", "o", ".", "Directory the output files are written to")
	f.StringVarP(&flags.configPath, "config", "c", "", "Optional YAML config file")
	f.BoolVar(&flags.references, "references", false, "Also extract dark and reference spectra")
	f.BoolVar(&flags.sort, "sort", false, "Process inputs in sample-number order instead of argument order")
	f.StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	f.StringVar(&flags.logFile, "log-file", "", "Optional log file (stderr is always included)")
	return cmd
}

// loadConfig reads the config file and lets explicitly set flags win.
func loadConfig(cmd *cobra.Command) (*utils.Config, error) {
	cfg, err := utils.LoadConfig(flags.configPath)
	if err != nil {
		return nil, err
	}
	f := cmd.Flags()
	if f.Changed("file") {
		cfg.Output.Basename = flags.basename
	}
	if f.Changed("output-dir") {
		cfg.Output.Dir = flags.outputDir
	}
	if f.Changed("references") {
		cfg.Extract.References = flags.references
	}
	if f.Changed("sort") {
		cfg.Extract.SortBySample = flags.sort
	}
	if f.Changed("log-level") {
		cfg.Logging.Level = flags.logLevel
	}
	if f.Changed("log-file") {
		cfg.Logging.File = flags.logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	level, _ := utils.ParseLogLevel(cfg.Logging.Level)
	logger := utils.InitLogger(level, cfg.Logging.File)
	defer logger.Close()

	utils.L().Debug("extracting %d archives  (basename=%s, dir=%s, references=%v, sort=%v)",
		len(args), cfg.Output.Basename, cfg.Output.Dir, cfg.Extract.References, cfg.Extract.SortBySample)

	sum, err := controller.NewBatchController(cfg).Run(args)
	if err != nil {
		utils.L().Error("extraction failed: %v", err)
		return err
	}

	ok := color.New(color.FgGreen, color.Bold)
	ok.Fprintf(cmd.OutOrStdout(), "✓ %d samples → %s\n", sum.Samples, filepath.Join(cfg.Output.Dir, cfg.Output.Basename+".csv"))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
