package exec

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	cmdUtil "github.com/scenecv/scenecv/cmd/util"
	"github.com/scenecv/scenecv/remote/client"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var ExecCmd = &cobra.Command{
	Use:   "exec [command...]",
	Short: "Send a command to a running scenecv server",
	Long: `Send a command line to a running scenecv server and print the response.
With no arguments an interactive prompt is started that sends one command per line.

Examples:
  scenecv exec vget /cameras
  scenecv exec vset /camera/0/location 10 20 30
  scenecv exec --output img.png vget /camera/0/lit png`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return cmdUtil.BindCommandFlags(cmd)
	},
	RunE: run,
}

func init() {
	cobra.OnInitialize(cmdUtil.InitConfig)

	cmdUtil.SetupClientFlags(ExecCmd)

	key := "output"
	ExecCmd.PersistentFlags().String(key, "", cmdUtil.WrapString("File to write a binary response to (without this flag binary responses are summarized on stdout)"))
}

func run(_ *cobra.Command, args []string) error {
	t, err := cmdUtil.GetClientTransport()
	if err != nil {
		return err
	}

	c := client.NewCommandClient(t)
	if err := c.Connect(*cmdUtil.GetClientConfig()); err != nil {
		return err
	}
	defer c.Close()

	// One-shot mode
	if len(args) > 0 {
		return runOne(c, strings.Join(args, " "))
	}

	// Interactive mode: one command per line until EOF
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			return nil
		}
		if line != "" {
			if err := runOne(c, line); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		fmt.Print("> ")
	}
	return scanner.Err()
}

// runOne sends a single command and prints or saves the response
func runOne(c *client.CommandClient, command string) error {
	result, err := c.Run(command)
	if err != nil {
		return err
	}

	if result.Binary != nil {
		if output := viper.GetString("output"); output != "" {
			if err := os.WriteFile(output, result.Binary, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %v", output, err)
			}
			fmt.Printf("wrote %d bytes to %s\n", len(result.Binary), output)
			return nil
		}
	}

	fmt.Println(result.String())
	return nil
}
