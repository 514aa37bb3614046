package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "View squeeze's version",
	Long:  "Display the installed version of squeeze.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("squeeze version 0.1.0")
		return nil
	},
}
