package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nlowe/staticd"
)

var checkCmd = &cobra.Command{
	Use:   "check <path>...",
	Short: "Resolve request paths against the configured locations",
	Long: `Check resolves one or more request paths the way the server would and
reports the outcome, which helps debug location ordering and traversal
rejections without starting the server.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	locations, cleanup, err := openLocations(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	chain := staticd.NewChain(locations)

	failed := false
	for _, raw := range args {
		processed := staticd.ProcessPath(raw)
		res, resolveErr := chain.Resolve(processed)
		if resolveErr != nil {
			failed = true
			if errors.Is(resolveErr, staticd.ErrNotFound) {
				cmd.Printf("%s: not found (processed as %q)\n", raw, processed)
			} else {
				cmd.Printf("%s: %v\n", raw, resolveErr)
			}
			continue
		}
		cmd.Printf("%s: %s (%d bytes", raw, res.Name(), res.Length())
		if mod := res.ModTime(); !mod.IsZero() {
			cmd.Printf(", modified %s", mod.UTC().Format("2006-01-02 15:04:05"))
		}
		cmd.Println(")")
	}

	if failed {
		return errors.New("some paths did not resolve")
	}
	return nil
}
