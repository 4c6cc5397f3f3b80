package main

import (
	"fmt"

	"filechooser/internal/filter"

	"github.com/spf13/cobra"
)

// NewCheckNameCmd creates the check-name command
func NewCheckNameCmd() *cobra.Command {
	var hidden bool

	cmd := &cobra.Command{
		Use:   "check-name NAME",
		Short: "Check whether NAME can be used for a new file or folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := filter.CheckFilename(args[0], hidden || cfg.Browse.ShowHidden)
			if !status.OK() {
				fmt.Fprintln(cmd.OutOrStdout(), errorText(status.String()))
				return errRejected
			}
			fmt.Fprintln(cmd.OutOrStdout(), okText(status.String()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&hidden, "hidden", false, "allow names starting with a dot")
	return cmd
}

// NewFormatCmd creates the format command
func NewFormatCmd() *cobra.Command {
	var (
		flags       filterFlags
		filterIndex int
		suffixIndex int
	)

	cmd := &cobra.Command{
		Use:   "format NAME",
		Short: "Print NAME with the suffix a save under the active filter would add",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := flags.specs(cfg)
			if err != nil {
				return err
			}
			if filterIndex < 0 || filterIndex >= len(specs) {
				filterIndex = 0
			}
			spec := specs[filterIndex]
			fmt.Fprintln(cmd.OutOrStdout(), filter.FormatFilenameForSave(args[0], spec, suffixIndex))
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().IntVarP(&filterIndex, "filter-index", "f", 0, "which filter to format with")
	cmd.Flags().IntVarP(&suffixIndex, "index", "i", -1, "preferred suffix index, negative counts from the end")
	return cmd
}
