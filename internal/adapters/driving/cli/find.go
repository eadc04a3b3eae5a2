package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var findJSON bool

var findCmd = &cobra.Command{
	Use:   "find [instruction]",
	Short: "Find sheet music matching a natural-language request",
	Long: `Interprets a natural-language instruction, extracts search parameters
and looks up matching choral sheet music.

Examples:
  cantoria find "Find me SATB pieces about Spring Earth that use overtone singing"
  cantoria find "I want 2 pieces for my beginning Tenor-Bass Choir"
  cantoria find --mode local-fallback "TB pieces about the Earth"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFind,
}

func init() {
	findCmd.Flags().BoolVar(&findJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	instruction := strings.Join(args, " ")

	finder, err := resolveFinder()
	if err != nil {
		return err
	}

	report := finder.Find(cmd.Context(), instruction)

	if findJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	renderReport(cmd, report)
	return nil
}
