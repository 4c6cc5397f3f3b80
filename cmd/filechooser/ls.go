package main

import (
	"encoding/json"
	"fmt"

	"filechooser/internal/browse"
	"filechooser/pkg/types"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

type listingJSON struct {
	Dir     string        `json:"dir"`
	CanGoUp bool          `json:"can_go_up"`
	Filter  string        `json:"filter"`
	Dirs    []types.Entry `json:"dirs"`
	Files   []types.Entry `json:"files"`
}

// NewLsCmd creates the ls command
func NewLsCmd() *cobra.Command {
	var (
		flags       filterFlags
		jsonOutput  bool
		dirsOnly    bool
		filterIndex int
	)

	cmd := &cobra.Command{
		Use:   "ls [directory]",
		Short: "Print a filtered directory listing",
		Long: `Print the listing the chooser would show: folders first, then files
matching the active filter, both in ordinal name order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := types.Open
			if dirsOnly {
				mode = types.SelectDirectory
			}
			lister, err := flags.newLister(cfg, mode)
			if err != nil {
				return err
			}
			listing := lister.Open(startDir(cfg, args))
			if filterIndex != 0 {
				listing = lister.SetActiveFilterIndex(listing, filterIndex)
			}

			if jsonOutput {
				return printListingJSON(cmd, lister, listing, flags.detailLevel(cfg))
			}
			printListing(cmd, lister, listing, flags.detailLevel(cfg))
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the listing as JSON")
	cmd.Flags().BoolVarP(&dirsOnly, "dirs", "d", false, "list folders only")
	cmd.Flags().IntVarP(&filterIndex, "index", "i", 0, "active filter index")
	return cmd
}

func printListing(cmd *cobra.Command, lister *browse.Lister, listing *browse.Listing, detail int) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerText(listing.Dir))
	fmt.Fprintln(out, mutedText("Type: "+lister.ActiveFilter(listing).Label(detail)))
	for _, d := range listing.Dirs {
		fmt.Fprintln(out, dirText(d.DisplayName()))
	}
	for _, f := range listing.Files {
		fmt.Fprintf(out, "%s  %s\n", f.Name, mutedText(humanize.IBytes(uint64(f.Size))))
	}
}

func printListingJSON(cmd *cobra.Command, lister *browse.Lister, listing *browse.Listing, detail int) error {
	data, err := json.MarshalIndent(listingJSON{
		Dir:     listing.Dir,
		CanGoUp: listing.CanGoUp,
		Filter:  lister.ActiveFilter(listing).Label(detail),
		Dirs:    nonNil(listing.Dirs),
		Files:   nonNil(listing.Files),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding listing: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func nonNil(entries []types.Entry) []types.Entry {
	if entries == nil {
		return []types.Entry{}
	}
	return entries
}
