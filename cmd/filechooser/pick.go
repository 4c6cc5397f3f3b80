package main

import (
	"encoding/json"
	"fmt"
	"os"

	"filechooser/internal/log"
	"filechooser/internal/session"
	"filechooser/internal/tui"
	"filechooser/internal/watch"
	"filechooser/pkg/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// NewPickCmd creates the interactive pick command
func NewPickCmd() *cobra.Command {
	var (
		flags      filterFlags
		modeName   string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "pick [directory]",
		Short: "Choose files or a folder interactively",
		Long: `Open the chooser in a terminal UI and print what was picked, one path
per line. The UI draws on stderr so the output can be captured.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := types.ParseMode(modeName)
			if err != nil {
				return err
			}
			lister, err := flags.newLister(cfg, mode)
			if err != nil {
				return err
			}
			sess := session.New(lister, mode, startDir(cfg, args))

			opts := []tui.Option{
				tui.WithTheme(cfg.Theme),
				tui.WithDetail(flags.detailLevel(cfg)),
			}
			if cfg.Browse.Watch {
				w, err := watch.New()
				if err != nil {
					log.LogWithError(err).Warn("Directory watching disabled")
				} else {
					defer w.Stop()
					opts = append(opts, tui.WithWatcher(w))
				}
			}

			model := tui.New(sess, opts...)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running chooser: %w", err)
			}

			res, ok := model.Result()
			if !ok {
				return errCancelled
			}
			return printResult(cmd, res, jsonOutput)
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVarP(&modeName, "mode", "m", "open", "open, multi, dir or save")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the result as JSON")
	return cmd
}

func printResult(cmd *cobra.Command, res session.Result, jsonOutput bool) error {
	out := cmd.OutOrStdout()
	if jsonOutput {
		data, err := json.Marshal(res)
		if err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}
	for _, p := range res.Paths {
		fmt.Fprintln(out, p)
	}
	return nil
}
