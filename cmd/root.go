package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "golang-persistent-eth",
	Short: "golang-persistent-eth renames network interfaces to a stable ethN scheme at boot",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
