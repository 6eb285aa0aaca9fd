package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MeKo-Tech/langid/internal/config"
	"github.com/MeKo-Tech/langid/internal/langmodel"
	"github.com/MeKo-Tech/langid/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	outputFormatJSON = "json"
	outputFormatCSV  = "csv"
	outputFormatText = "text"
)

// textCmd represents the text command.
var textCmd = &cobra.Command{
	Use:   "text [text...]",
	Short: "Detect the language of text snippets",
	Long: `Detect the language of one or more text snippets using character n-gram
profiles. Each argument is treated as an independent input. When no
arguments are given or an argument is "-", text is read from stdin.

Examples:
  langid text "Bonjour tout le monde"
  langid text "Hello world" "Guten Tag" --format json
  cat article.txt | langid text
  langid text --file article.txt
  langid text "Dobar dan" --whitelist hrv,srp,slv --all`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Help handling for tests
		if len(args) > 0 && (args[0] == "--help" || args[0] == "-h") {
			return cmd.Help()
		}

		// Get configuration (includes CLI flags, config file, env vars, and defaults)
		cfg := GetConfig()

		format := cfg.Output.Format
		outputFile := cfg.Output.File
		allCandidates := cfg.Output.All

		// Validate output format
		validFormats := []string{outputFormatText, outputFormatJSON, outputFormatCSV}
		isValidFormat := false
		for _, f := range validFormats {
			if format == f {
				isValidFormat = true
				break
			}
		}
		if !isValidFormat {
			return fmt.Errorf("invalid output format: %s (must be one of: %s)", format, strings.Join(validFormats, ", "))
		}

		fromFiles, _ := cmd.Flags().GetBool("file")
		inputs, err := collectInputs(cmd.InOrStdin(), args, fromFiles)
		if err != nil {
			return err
		}
		if len(inputs) == 0 {
			return errors.New("no input text provided")
		}

		pl, err := buildDetectionPipeline(cfg)
		if err != nil {
			return fmt.Errorf("failed to build detection pipeline: %w", err)
		}

		var outputs []string
		for _, input := range inputs {
			det, err := pl.DetectAllContext(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("detection failed: %w", err)
			}
			s, err := formatDetection(input, det, format, allCandidates, len(inputs) > 1)
			if err != nil {
				return err
			}
			outputs = append(outputs, s)
		}

		final := strings.Join(outputs, "\n")
		if outputFile != "" {
			if err := os.WriteFile(outputFile, []byte(final+"\n"), 0o600); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Results written to %s\n", outputFile); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), final); err != nil {
				return fmt.Errorf("failed to write final output: %w", err)
			}
		}
		return nil
	},
}

// collectInputs gathers the texts to classify from args and stdin. A lone "-"
// argument, or no arguments at all, reads a single input from stdin. With
// fromFiles set, each argument names a text file to read instead.
func collectInputs(stdin io.Reader, args []string, fromFiles bool) ([]string, error) {
	if len(args) == 0 {
		return readStdinInput(stdin)
	}
	var inputs []string
	for _, arg := range args {
		if arg == "-" {
			fromStdin, err := readStdinInput(stdin)
			if err != nil {
				return nil, err
			}
			inputs = append(inputs, fromStdin...)
			continue
		}
		if fromFiles {
			data, err := os.ReadFile(arg) //nolint:gosec // G304: reading user-supplied input path
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", arg, err)
			}
			inputs = append(inputs, strings.TrimSpace(string(data)))
			continue
		}
		inputs = append(inputs, arg)
	}
	return inputs, nil
}

func readStdinInput(stdin io.Reader) ([]string, error) {
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, nil
	}
	return []string{text}, nil
}

// buildDetectionPipeline constructs a pipeline from the resolved configuration.
func buildDetectionPipeline(cfg *config.Config) (*pipeline.Pipeline, error) {
	pCfg := cfg.ToPipelineConfig()
	b := pipeline.NewBuilder().
		WithModelsDir(pCfg.ModelsDir).
		WithMinTextLength(pCfg.MinTextLength).
		WithMaxTextLength(pCfg.MaxTextLength).
		WithTieBand(pCfg.TieBand)
	if pCfg.ModelPath != "" {
		b = b.WithModelPath(pCfg.ModelPath)
	}
	if len(pCfg.Whitelist) > 0 {
		b = b.WithWhitelist(pCfg.Whitelist)
	}
	return b.Build()
}

// formatDetection renders a single detection in the requested format.
func formatDetection(input string, det *pipeline.Detection, format string, allCandidates, multi bool) (string, error) {
	switch format {
	case outputFormatJSON:
		obj := struct {
			Input     string              `json:"input"`
			Detection *pipeline.Detection `json:"detection"`
		}{Input: input, Detection: det}
		bts, err := json.MarshalIndent(obj, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(bts), nil
	case outputFormatCSV:
		var sb strings.Builder
		sb.WriteString("rank,language,name,confidence,scripts\n")
		for i, res := range det.Results {
			fmt.Fprintf(&sb, "%d,%s,%s,%.4f,%s\n",
				i+1, res.Language, langmodel.Name(res.Language), res.Confidence,
				strings.Join(det.Scripts, "+"))
			if !allCandidates {
				break
			}
		}
		return strings.TrimSuffix(sb.String(), "\n"), nil
	default:
		var sb strings.Builder
		if multi {
			sb.WriteString("# " + truncateInput(input) + "\n")
		}
		for _, res := range det.Results {
			fmt.Fprintf(&sb, "%s (%s) %.4f\n", res.Language, langmodel.Name(res.Language), res.Confidence)
			if !allCandidates {
				break
			}
		}
		return strings.TrimSuffix(sb.String(), "\n"), nil
	}
}

// truncateInput shortens long inputs for text-format headers.
func truncateInput(s string) string {
	const maxHeader = 40
	runes := []rune(s)
	if len(runes) <= maxHeader {
		return s
	}
	return string(runes[:maxHeader]) + "..."
}

func addTextFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "text", "output format (text, json, csv)")
	cmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolP("all", "a", false, "show all ranked candidates, not just the best match")
	cmd.Flags().Bool("file", false, "treat arguments as paths to text files instead of literal text")
	cmd.Flags().StringSliceP("whitelist", "l", nil, "restrict candidates to these language codes (e.g. eng,fra,deu)")
	cmd.Flags().Int("min-length", 0, "minimum input length in runes before falling back to \"und\"")
	cmd.Flags().Int("max-length", 0, "maximum input length in runes (longer inputs are truncated)")
	cmd.Flags().Float64("tie-band", 0, "script tie band in (0,1] for including secondary scripts")
	cmd.Flags().StringP("model", "m", "", "explicit language model pack file (overrides models-dir)")
}

// bindTextFlags binds all flags to viper configuration keys.
func bindTextFlags(cmd *cobra.Command) {
	flagBindings := []struct {
		key  string
		flag string
	}{
		{"output.format", "format"},
		{"output.file", "output"},
		{"output.all", "all"},
		{"detection.whitelist", "whitelist"},
		{"detection.min_text_length", "min-length"},
		{"detection.max_text_length", "max-length"},
		{"detection.tie_band", "tie-band"},
		{"model_path", "model"},
	}

	for _, binding := range flagBindings {
		if err := viper.BindPFlag(binding.key, cmd.Flags().Lookup(binding.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", binding.flag, err))
		}
	}
}

func init() {
	rootCmd.AddCommand(textCmd)

	addTextFlags(textCmd)
	bindTextFlags(textCmd)
}

// GetTextCommand returns the text command for testing purposes.
func GetTextCommand() *cobra.Command {
	return textCmd
}
