// Command alphalink enumerates every distinct dendrogram produced by greedy
// linkage as an interpolation parameter alpha sweeps [0,1], and scores each
// one against ground-truth labels.
package main

import (
	"fmt"
	"os"

	"alphalink/internal/envconfig"
	"alphalink/internal/runlog"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	log     *runlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "alphalink",
	Short: "Enumerate and score parametric-linkage dendrograms",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		envconfig.Load()
		log = runlog.New()
		if !verbose {
			log.Logger = log.Logger.Level(zerolog.InfoLevel)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(batchCmd)
}

// version is stamped at release time; left at "dev" for local builds.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the alphalink version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(version)
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
