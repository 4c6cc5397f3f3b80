package main

import (
	"fmt"

	"filechooser/internal/filter"

	"github.com/spf13/cobra"
)

// NewFiltersCmd creates the filters command
func NewFiltersCmd() *cobra.Command {
	var (
		mimes  []string
		detail int
	)

	cmd := &cobra.Command{
		Use:   "filters",
		Short: "Print the labels of the MIME filters that survive validation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(mimes) == 0 {
				mimes = cfg.Mimes
			}
			if detail < 0 {
				detail = cfg.Detail
			}
			trimmed := filter.TrimAndValidateMimes(mimes)
			labels := filter.DescribeFilters(trimmed, detail)
			for i, label := range labels {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", trimmed[i], label)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&mimes, "mime", nil, "MIME type to describe (repeatable)")
	cmd.Flags().IntVar(&detail, "detail", -1, "label detail 0-2 (default from config)")
	return cmd
}

// NewMimeCmd creates the mime command
func NewMimeCmd() *cobra.Command {
	var suffixes bool

	cmd := &cobra.Command{
		Use:   "mime FILE",
		Short: "Print the MIME type of FILE",
		Long: `Print the MIME type of FILE from its suffix, falling back to the
file content when the suffix is unknown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mime, err := filter.DetectMimeType(newFs(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, mime)
			if suffixes {
				for _, s := range filter.ResolveMimeToSuffixes(mime) {
					fmt.Fprintln(out, mutedText(s))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&suffixes, "suffixes", "s", false, "also print the suffixes mapped to the type")
	return cmd
}
