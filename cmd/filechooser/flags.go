package main

import (
	"filechooser/internal/browse"
	"filechooser/internal/config"
	"filechooser/internal/filter"
	"filechooser/internal/session"
	"filechooser/pkg/types"

	"github.com/spf13/cobra"
)

// filterFlags are shared by the commands that list or format names.
type filterFlags struct {
	mimes          []string
	filters        []string
	hidden         bool
	ignoreReadOnly bool
	detail         int
}

func (f *filterFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.mimes, "mime", nil, "MIME filter such as image/* (repeatable)")
	cmd.Flags().StringArrayVar(&f.filters, "filter", nil, `extension filter "Name=.a,.b" (repeatable)`)
	cmd.Flags().BoolVar(&f.hidden, "hidden", false, "show dot entries and allow dot names")
	cmd.Flags().BoolVar(&f.ignoreReadOnly, "ignore-read-only", false, "accept read-only folders in dir and save modes")
	cmd.Flags().IntVar(&f.detail, "detail", -1, "filter label detail 0-2 (default from config)")
}

// specs returns the filters named on the command line, or the configured
// ones when no filter flag is given.
func (f *filterFlags) specs(c *config.Config) ([]filter.Spec, error) {
	if len(f.mimes) == 0 && len(f.filters) == 0 {
		return c.Specs()
	}
	specs := make([]filter.Spec, 0, len(f.filters)+len(f.mimes))
	for _, v := range f.filters {
		spec, err := filter.ParseFilterFlag(v)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	if len(f.mimes) > 0 {
		specs = append(specs, filter.SpecsFromMimes(f.mimes)...)
	}
	return specs, nil
}

func (f *filterFlags) detailLevel(c *config.Config) int {
	if f.detail >= 0 {
		return f.detail
	}
	return c.Detail
}

// newLister builds a lister over the real filesystem for mode.
func (f *filterFlags) newLister(c *config.Config, mode types.Mode) (*browse.Lister, error) {
	specs, err := f.specs(c)
	if err != nil {
		return nil, err
	}
	base := browse.Options{
		Filters:     specs,
		ShowHidden:  f.hidden || c.Browse.ShowHidden,
		Ignore:      c.Browse.Ignore,
		DefaultRoot: c.Browse.StartDir,
	}
	opts := session.ListerOptions(base, mode, f.ignoreReadOnly || c.Browse.IgnoreReadOnly)
	return browse.NewLister(newFs(), newProbe(), opts)
}

// startDir picks the first argument, then the configured start directory.
// An empty result lets the lister use its default root.
func startDir(c *config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return c.Browse.StartDir
}
