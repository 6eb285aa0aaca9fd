package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/MeKo-Tech/langid/internal/langmodel"
	"github.com/spf13/cobra"
)

// languagesCmd represents the languages command.
var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the languages supported by the loaded models",
	Long: `List the language codes and names supported by the configured model packs.

Examples:
  langid languages
  langid languages --format json
  langid languages --models-dir ./models`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		pl, err := buildDetectionPipeline(cfg)
		if err != nil {
			return fmt.Errorf("failed to build detection pipeline: %w", err)
		}

		codes := pl.Languages()
		sort.Strings(codes)

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case outputFormatJSON:
			type languageEntry struct {
				Code string `json:"code"`
				Name string `json:"name"`
			}
			entries := make([]languageEntry, 0, len(codes))
			for _, code := range codes {
				entries = append(entries, languageEntry{Code: code, Name: langmodel.Name(code)})
			}
			bts, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(bts)); err != nil {
				return err
			}
		default:
			for _, code := range codes {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", code, langmodel.Name(code)); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "\n%d languages\n", len(codes)); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
	languagesCmd.Flags().StringP("format", "f", "text", "output format (text, json)")
}

// GetLanguagesCommand returns the languages command for testing purposes.
func GetLanguagesCommand() *cobra.Command {
	return languagesCmd
}
