package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "groovylex",
		Short:        "groovylex",
		SilenceUsage: true,
		Long:         `CLI tool for lexing Groovy/Nextflow source into terminals and concrete-syntax digests.`,
	}

	noColor bool
	verbose bool
	log     = logrus.StandardLogger()
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colorized terminal output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	}
	return rootCmd.Execute()
}

func init() {
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
}
