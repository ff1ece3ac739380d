package cmd

import (
	"fmt"
	"os"

	"github.com/scenecv/scenecv/cmd/exec"
	"github.com/scenecv/scenecv/cmd/serve"
	"github.com/scenecv/scenecv/cmd/util"
	"github.com/scenecv/scenecv/remote/server"
	"github.com/spf13/cobra"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "scenecv",
		Short: "remote control plane for scene state",
		Long: fmt.Sprintf(`scenecv (v%s)

A remote-control server that accepts textual commands over a framed
stream protocol and executes them against live scene state, answering
with text, errors, or binary payloads such as captured images.`, server.Version),
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of scenecv",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("scenecv v%s\n", server.Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(serve.ServeCmd)
	RootCmd.AddCommand(exec.ExecCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "transport"
	RootCmd.PersistentFlags().String(key, "tcp", util.WrapString("transport to use (tcp, unix)"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
