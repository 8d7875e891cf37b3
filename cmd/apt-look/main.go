// Command apt-look explores a remote APT repository's metadata: listing
// its packages, showing statistics, searching, and finding the latest
// version of each package, without needing local APT configuration.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var options struct {
	format string
}

var rootCmd = &cobra.Command{
	Use:   "apt-look",
	Short: "Explore APT repositories without system configuration",
	Long: `apt-look reads the metadata of a remote APT repository: the
InRelease descriptor and the Packages indices it references. It lists
packages, reports statistics, searches by name or description, and finds
the latest version of each package, without requiring local APT
configuration.`,
	Example: `  apt-look list "deb http://archive.ubuntu.com/ubuntu/ jammy main"
  apt-look stats "deb http://archive.ubuntu.com/ubuntu/ jammy main"
  apt-look search "deb http://archive.ubuntu.com/ubuntu/ jammy main" golang`,
}

var listCmd = &cobra.Command{
	Use:   "list <source>",
	Short: "List every package in the repository",
	Args:  cobra.ExactArgs(1),
	Example: `  apt-look list "deb http://archive.ubuntu.com/ubuntu/ jammy main"
  apt-look list /etc/apt/sources.list.d/docker.list --format=json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(args[0], options.format)
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <source> <package>",
	Short: "Show the full record for one package",
	Args:  cobra.ExactArgs(2),
	Example: `  apt-look info "deb http://archive.ubuntu.com/ubuntu/ jammy main" golang-1.21`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInfo(args[0], args[1], options.format)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats <source>",
	Short: "Show repository statistics",
	Args:  cobra.ExactArgs(1),
	Example: `  apt-look stats "deb http://archive.ubuntu.com/ubuntu/ jammy main"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats(args[0], options.format)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <source> <term>",
	Short: "Search package names and descriptions for a term",
	Args:  cobra.ExactArgs(2),
	Example: `  apt-look search "deb http://archive.ubuntu.com/ubuntu/ jammy main" golang`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(args[0], args[1], options.format)
	},
}

var latestCmd = &cobra.Command{
	Use:   "latest <source>",
	Short: "Show the latest version of each package",
	Args:  cobra.ExactArgs(1),
	Example: `  apt-look latest "deb http://archive.ubuntu.com/ubuntu/ jammy main"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLatest(args[0], options.format)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&options.format, "format", "f", "text",
		"Output format (text, json, tsv, raw)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		switch options.format {
		case "text", "json", "tsv", "raw":
			return nil
		default:
			return fmt.Errorf("invalid format %q, valid formats: %s",
				options.format, strings.Join([]string{"text", "json", "tsv", "raw"}, ", "))
		}
	}

	rootCmd.AddCommand(listCmd, infoCmd, statsCmd, searchCmd, latestCmd)
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: false})
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Msgf("%v", err)
	}
}
