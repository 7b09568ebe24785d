package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "v0.1.0"
	commit  = "HEAD"
	date    = "2026-10-16"
)

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Long:  `Print the version information for the calc CLI`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "calc version %s\n", version)
			fmt.Fprintf(out, "Commit: %s\n", commit)
			fmt.Fprintf(out, "Build Date: %s\n", date)
			fmt.Fprintf(out, "Go Version: %s\n", runtime.Version())
			fmt.Fprintf(out, "Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

func init() {
	rootCmd.AddCommand(NewVersionCmd())
}
