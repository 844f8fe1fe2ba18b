package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Print the identity records of a document",
	Args:  cobra.ExactArgs(1),
	RunE:  inspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func inspect(cmd *cobra.Command, args []string) error {
	records, err := readDocument(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}
	for n, rec := range records {
		fmt.Printf("%3d  %s/%s  name=%q  valid=%v\n",
			n, rec.FactoryTag, rec.InstanceTag, rec.InstanceName, rec.IsValid())
	}
	fmt.Printf("%d record(s)\n", len(records))
	return nil
}
