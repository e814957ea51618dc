package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exampleName string

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print a greeting",
	Long:  `Example is a placeholder command demonstrating the output envelope.`,
	Example: `  kozmotic example --name Ada
  kozmotic --format human example`,
	RunE: func(cmd *cobra.Command, args []string) error {
		msg := fmt.Sprintf("Hello, %s!", exampleName)
		return newPrinter("example").Success(map[string]string{"message": msg}, msg)
	},
}

func init() {
	exampleCmd.Flags().StringVarP(&exampleName, "name", "n", "World", "name to greet")
	rootCmd.AddCommand(exampleCmd)
}
