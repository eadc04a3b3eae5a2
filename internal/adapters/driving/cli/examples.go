package cli

import (
	"github.com/spf13/cobra"
)

// demoInstructions are run by the examples command, in order.
var demoInstructions = []string{
	"Find me vocal pieces about Spring Earth that's in SATB and that uses overtone singing",
	"I want 2 pieces for my beginning Tenor-Bass Choir about the Earth.",
}

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "Run two demonstration requests",
	Long: `Runs two built-in demonstration requests through the full pipeline,
showing how instructions are parsed and what results come back.`,
	RunE: runExamples,
}

func init() {
	rootCmd.AddCommand(examplesCmd)
}

func runExamples(cmd *cobra.Command, _ []string) error {
	finder, err := resolveFinder()
	if err != nil {
		return err
	}

	for i, instruction := range demoInstructions {
		if i > 0 {
			cmd.Println()
		}
		cmd.Printf("Instruction: %s\n", instruction)
		cmd.Println()

		report := finder.Find(cmd.Context(), instruction)
		renderReport(cmd, report)
	}

	return nil
}
