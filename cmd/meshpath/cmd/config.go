package cmd

import (
	"fmt"
	"io/ioutil"

	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"

	"github.com/stewartoallen/mesh-to-points/session"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "write a build settings file",
	Long: `Write a build settings file in YAML format, prefilled with default
values (step, x_step, y_step, oob_z, out-of-bounds policy, worker count).

If FILE is not provided, 'meshpath.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "meshpath.yml"
		if len(args) >= 1 {
			path = args[0]
		}

		ok, err := confirmIfExists(path, fmt.Sprintf("file '%s' already exists, overwrite? [y/N]", path))
		if !ok {
			if err == nil {
				fmt.Println("aborted by user")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}

		buf, err := yaml.Marshal(session.NewSettings())
		check(err)
		check(ioutil.WriteFile(path, buf, 0644))

		fmt.Printf("build settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
