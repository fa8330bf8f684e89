// Package cmd provides the hotelctl commands.
package cmd

import (
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hotelctl",
		Short: "Operator tools for the hotel management API",
		Long: `hotelctl runs the reservation pricing engine without a database.

Examples:
  hotelctl quote --check-in 2024-01-05 --check-out 2024-01-08 --weekday 100 --weekend 150
  hotelctl quote --check-in 2024-01-01 --check-out 2024-01-02 --weekday 100 --check-in-time 06:00:00`,
		SilenceUsage: true,
	}
	root.AddCommand(newQuoteCmd())
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}
