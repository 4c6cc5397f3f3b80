package main

import (
	"encoding/json"
	"fmt"

	"filechooser/internal/storage"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// NewRootsCmd creates the roots command
func NewRootsCmd() *cobra.Command {
	var (
		jsonOutput bool
		writable   bool
	)

	cmd := &cobra.Command{
		Use:   "roots",
		Short: "Print the storage roots the chooser offers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fallback := cfg.Browse.StartDir
			if fallback == "" {
				fallback = storage.DefaultRoot()
			}
			roots := storage.ListRoots(newFs(), newProbe(), writable, fallback)

			out := cmd.OutOrStdout()
			if jsonOutput {
				data, err := json.MarshalIndent(roots, "", "  ")
				if err != nil {
					return fmt.Errorf("error encoding roots: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			for _, r := range roots {
				access := okText("rw")
				if !r.Writable {
					access = mutedText("ro")
				}
				fmt.Fprintf(out, "%s  %s  %s\n", dirText(r.Path), access,
					mutedText(fmt.Sprintf("%s free of %s", humanize.IBytes(r.Free), humanize.IBytes(r.Total))))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the roots as JSON")
	cmd.Flags().BoolVarP(&writable, "writable", "w", false, "only list writable roots")
	return cmd
}
