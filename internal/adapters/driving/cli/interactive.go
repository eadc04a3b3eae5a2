package cli

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cantoria-labs/cantoria-cli/internal/core/ports/driving"
	"github.com/cantoria-labs/cantoria-cli/internal/logger"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"repl"},
	Short:   "Interactively enter sheet-music requests",
	Long: `Reads requests line by line and processes each one through the full
pipeline. Enter "quit", "exit" or "q" to leave.`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	finder, err := resolveFinder()
	if err != nil {
		return err
	}

	cmd.Println("Enter a sheet-music request, or \"quit\" to leave.")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		cmd.Print("> ")
		if !scanner.Scan() {
			break
		}

		instruction := strings.TrimSpace(scanner.Text())
		if instruction == "" {
			continue
		}
		switch strings.ToLower(instruction) {
		case "quit", "exit", "q":
			return scanner.Err()
		}

		processInstruction(cmd, finder, instruction)
	}

	return scanner.Err()
}

// processInstruction runs one request and keeps the loop alive whatever
// happens: a failure in one request must not end the session.
func processInstruction(cmd *cobra.Command, finder driving.FinderService, instruction string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("Request failed: %v", r)
		}
	}()

	report := finder.Find(cmd.Context(), instruction)
	renderReport(cmd, report)
	cmd.Println()
}
