package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert a document between binary and XML",
	Args:  cobra.ExactArgs(2),
	RunE:  convert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func convert(cmd *cobra.Command, args []string) error {
	records, err := readDocument(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}
	if err := writeDocument(args[1], records); err != nil {
		return err
	}
	fmt.Printf("wrote %d record(s) to %s\n", len(records), args[1])
	return nil
}
