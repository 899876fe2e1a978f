package cmd

import (
	"github.com/spf13/cobra"
)

// Version is set during build
var Version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:   "gesturehid",
	Short: "gesturehid - virtual HID driver for the gesture pipeline",
	Long: `gesturehid creates a virtual mouse and a virtual gamepad through the
uinput kernel module and drives them from a line-oriented command stream
on stdin. The upstream hand-gesture pipeline pipes its commands in and
every application on the system sees the resulting input as real
hardware.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(versionCmd)
}
