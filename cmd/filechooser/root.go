package main

import (
	"filechooser/internal/config"
	"filechooser/internal/errors"
	"filechooser/internal/log"
	"filechooser/internal/storage"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
	cfg     *config.Config
)

// errCancelled and errRejected end the process with status 1 and no message.
var (
	errCancelled = errors.New("cancelled")
	errRejected  = errors.New("rejected")
)

// Filesystem and probe used by every command; tests swap them.
var (
	newFs    = afero.NewOsFs
	newProbe = func() storage.Probe { return storage.NewSystemProbe() }
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "filechooser",
		Short: "Pick files and folders from the terminal",
		Long: `filechooser browses storage roots and directories, filters files by
extension or MIME type, and prints what you pick.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfgFile != "" {
				cfg, err = config.LoadConfigFile(cfgFile)
			} else {
				cfg, err = config.LoadConfig()
			}
			if err != nil {
				return err
			}
			configureLogging(cfg.Log, debug)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/filechooser/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log debug lines to stderr")

	rootCmd.AddCommand(NewPickCmd())
	rootCmd.AddCommand(NewLsCmd())
	rootCmd.AddCommand(NewRootsCmd())
	rootCmd.AddCommand(NewCheckNameCmd())
	rootCmd.AddCommand(NewFormatCmd())
	rootCmd.AddCommand(NewFiltersCmd())
	rootCmd.AddCommand(NewMimeCmd())

	return rootCmd
}

func configureLogging(lc config.LogConfig, forceDebug bool) {
	if lc.File != "" {
		log.Configure(log.WithFile(lc.File))
	}
	log.SetFormat(lc.Format)
	log.SetDebug(lc.Debug || forceDebug)
}
