package cmd

import (
	"fmt"
	"runtime"
	"time"

	"github.com/MeKo-Tech/langid/internal/batch"
	"github.com/MeKo-Tech/langid/internal/config"
	"github.com/spf13/cobra"
)

// batchCmd represents the batch command for parallel file processing.
var batchCmd = &cobra.Command{
	Use:   "batch [files...]",
	Short: "Detect languages of multiple text files in parallel",
	Long: `Process multiple text files in parallel and detect the language of each.
This command is optimized for classifying large numbers of files efficiently
using parallel workers.

Supported extensions: .txt, .text, .md

Examples:
  langid batch *.txt
  langid batch docs/ --recursive --workers 8
  langid batch a.txt b.txt --format json --output results.json
  langid batch corpus/ --progress --stats`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         runBatchCommand,
}

// configToBatchConfig maps centralized configuration to batch.Config.
// CLI flags will override config file values through Viper's precedence system.
func configToBatchConfig(cfg *config.Config, cmd *cobra.Command) *batch.Config {
	batchConfig := &batch.Config{}

	// Core detection settings - use centralized config with CLI flag overrides
	batchConfig.ModelsDir = cfg.ModelsDir
	batchConfig.ModelPath = cfg.ModelPath
	if cmd.Flags().Changed("model") {
		batchConfig.ModelPath, _ = cmd.Flags().GetString("model")
	}

	batchConfig.Whitelist = cfg.Detection.Whitelist
	if cmd.Flags().Changed("whitelist") {
		batchConfig.Whitelist, _ = cmd.Flags().GetStringSlice("whitelist")
	}

	batchConfig.MinTextLength = cfg.Detection.MinTextLength
	if cmd.Flags().Changed("min-length") {
		batchConfig.MinTextLength, _ = cmd.Flags().GetInt("min-length")
	}

	batchConfig.MaxTextLength = cfg.Detection.MaxTextLength
	if cmd.Flags().Changed("max-length") {
		batchConfig.MaxTextLength, _ = cmd.Flags().GetInt("max-length")
	}

	batchConfig.TieBand = cfg.Detection.TieBand
	if cmd.Flags().Changed("tie-band") {
		batchConfig.TieBand, _ = cmd.Flags().GetFloat64("tie-band")
	}

	batchConfig.AllCandidates = cfg.Output.All
	if cmd.Flags().Changed("all") {
		batchConfig.AllCandidates, _ = cmd.Flags().GetBool("all")
	}

	batchConfig.Format = cfg.Output.Format
	if cmd.Flags().Changed("format") {
		batchConfig.Format, _ = cmd.Flags().GetString("format")
	}

	batchConfig.OutputFile = cfg.Output.File
	if cmd.Flags().Changed("output") {
		batchConfig.OutputFile, _ = cmd.Flags().GetString("output")
	}

	// Parallel processing settings
	batchConfig.Workers = cfg.Batch.Workers
	if cmd.Flags().Changed("workers") {
		batchConfig.Workers, _ = cmd.Flags().GetInt("workers")
	}

	// File discovery settings - these are typically CLI-only
	batchConfig.Recursive = cfg.Batch.Recursive
	if cmd.Flags().Changed("recursive") {
		batchConfig.Recursive, _ = cmd.Flags().GetBool("recursive")
	}
	batchConfig.IncludePatterns, _ = cmd.Flags().GetStringSlice("include")
	batchConfig.ExcludePatterns, _ = cmd.Flags().GetStringSlice("exclude")

	// Progress settings - these are typically CLI-only
	batchConfig.ShowProgress, _ = cmd.Flags().GetBool("progress")
	batchConfig.Quiet, _ = cmd.Flags().GetBool("quiet")
	batchConfig.ShowStats, _ = cmd.Flags().GetBool("stats")
	batchConfig.ProgressInterval, _ = cmd.Flags().GetDuration("progress-interval")

	return batchConfig
}

func runBatchCommand(cmd *cobra.Command, args []string) error {
	// Get configuration from centralized system (includes CLI flags, config file, env vars, and defaults)
	cfg := GetConfig()

	// Map to batch configuration
	batchConfig := configToBatchConfig(cfg, cmd)

	if !batchConfig.Quiet {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Processing %d path(s)...\n", len(args))
	}

	// Process batch
	result, err := batch.Run(cmd.Context(), args, batchConfig)
	if err != nil {
		return fmt.Errorf("batch processing failed: %w", err)
	}

	// Save results
	if err := result.SaveResults(batchConfig.Format, batchConfig.AllCandidates,
		batchConfig.OutputFile, batchConfig.Quiet); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	// Print stats
	if batchConfig.ShowStats {
		result.PrintStats(batchConfig.Quiet)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Core detection flags (reuse from text command)
	batchCmd.Flags().StringP("model", "m", "", "explicit language model pack file (overrides models-dir)")
	batchCmd.Flags().StringSliceP("whitelist", "l", nil, "restrict candidates to these language codes (e.g. eng,fra,deu)")
	batchCmd.Flags().Int("min-length", 0, "minimum input length in runes before falling back to \"und\"")
	batchCmd.Flags().Int("max-length", 0, "maximum input length in runes (longer inputs are truncated)")
	batchCmd.Flags().Float64("tie-band", 0, "script tie band in (0,1] for including secondary scripts")

	// Output flags
	batchCmd.Flags().BoolP("all", "a", false, "show all ranked candidates, not just the best match")
	batchCmd.Flags().StringP("format", "f", "text", "output format: text, json, csv")
	batchCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")

	// Parallel processing flags
	batchCmd.Flags().IntP("workers", "w", 0, fmt.Sprintf("number of parallel workers (default: %d)", runtime.NumCPU()))

	// File discovery flags
	batchCmd.Flags().BoolP("recursive", "r", false, "recursively scan directories")
	batchCmd.Flags().StringSlice("include", []string{}, "file patterns to include (e.g. *.txt)")
	batchCmd.Flags().StringSlice("exclude", []string{}, "file patterns to exclude")

	// Progress and monitoring flags
	batchCmd.Flags().Bool("progress", false, "show progress bar")
	batchCmd.Flags().Bool("quiet", false, "suppress progress output")
	batchCmd.Flags().Bool("stats", false, "show processing statistics")
	batchCmd.Flags().Duration("progress-interval", 500*time.Millisecond, "progress update interval")
}

// GetBatchCommand returns the batch command for testing purposes.
func GetBatchCommand() *cobra.Command {
	return batchCmd
}
