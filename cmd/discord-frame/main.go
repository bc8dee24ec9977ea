package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "discord-frame",
		Short: "Frame loop host for the Discord Game SDK",
		Long: `discord-frame runs a frame-driven loop with the Discord Game SDK attached.

The SDK client is constructed once at startup; if construction fails the
loop keeps running without it. While running, the SDK's callbacks are
processed once per frame on the loop thread.`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	root.AddCommand(newRunCommand())

	return root
}
