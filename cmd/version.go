package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of shopfront",
		Run: func(cmd *cobra.Command, args []string) {
			// rootCmd.Version is set from main via SetVersion
			fmt.Printf("shopfront version %s\n", rootCmd.Version)
		},
	}
}
