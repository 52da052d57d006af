package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/promoforge/compositor/asset"
)

var flagReplayOut string

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the export history",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List recorded exports, newest first",
			RunE:  runHistoryList,
		},
		&cobra.Command{
			Use:   "rm <id>",
			Short: "Remove one recorded export",
			Args:  cobra.ExactArgs(1),
			RunE:  runHistoryRemove,
		},
	)
	return cmd
}

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <id>",
		Short: "Re-render a recorded export",
		Args:  cobra.ExactArgs(1),
		RunE:  runReplay,
	}
	cmd.Flags().StringVar(&flagReplayOut, "out", "", "Output file path")
	return cmd
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	entries, err := buildStore(cfg).List(cmd.Context())
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no exports recorded")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tFORMAT\tTITLE\tCONTENT")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.CreatedAt.Format(time.RFC3339), e.Format, e.Title, truncate(e.Content, 40))
	}
	return w.Flush()
}

func runHistoryRemove(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := buildStore(cfg).Remove(cmd.Context(), args[0]); err != nil {
		return err
	}
	log.Info().Str("id", args[0]).Msg("entry removed")
	return nil
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	coordinator, err := buildCoordinator(cfg)
	if err != nil {
		return err
	}

	rendered, ok, err := coordinator.Replay(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no export with id %s", args[0])
	}

	path := flagReplayOut
	if path == "" {
		ext := "png"
		if rendered.Encoding == asset.JPEG {
			ext = "jpg"
		}
		path = filepath.Join(cfg.Output.Dir, fmt.Sprintf("%s-replay-%s.%s", appName, args[0], ext))
	}
	if err := os.WriteFile(path, rendered.Data, 0o644); err != nil {
		return fmt.Errorf("write asset: %w", err)
	}
	log.Info().Str("path", path).Str("id", args[0]).Msg("replay written")
	return nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}
