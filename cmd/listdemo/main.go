package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "listdemo",
	Short: "Walk through the arraylist container operations",
	Long: `listdemo exercises the arraylist library: growth on owned storage,
fixed caller-supplied buffers, element access, insertion, removal and search.`,
	RunE:         runDemo,
	SilenceUsage: true,
}

func main() {
	rootCmd.Flags().IntVar(&demoCapacity, "capacity", 3, "starting capacity of the owned list")
	rootCmd.Flags().StringVar(&colorMode, "color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
