// Package extlinker is the command line interface of extlinker.
package extlinker

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/extlinker/internal/version"
	"github.com/arthur-debert/extlinker/pkg/cobrax/topics"
	"github.com/arthur-debert/extlinker/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// ExitError ends the process with Code without printing anything. Commands
// answering a yes/no question return it for "no".
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "extlinker",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&opts.rootDir, "root-dir", "", MsgFlagRootDir)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "query", Title: "QUERIES:"})

	rootCmd.AddCommand(newLinkCmd(opts))
	rootCmd.AddCommand(newUnlinkCmd(opts))
	rootCmd.AddCommand(newExistsCmd(opts))
	rootCmd.AddCommand(newSupportsCmd(opts))
	rootCmd.AddCommand(newRootsCmd(opts))
	rootCmd.AddCommand(newInstallPathCmd(opts))
	rootCmd.AddCommand(newStatusCmd(opts))
	rootCmd.AddCommand(newVersionCmd(opts))

	helpTopics, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		if _, err := topics.Initialize(rootCmd, helpTopics, topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(),
		}); err != nil {
			log.Warn().Err(err).Msg("Help topics unavailable")
		}
	}

	return rootCmd
}
