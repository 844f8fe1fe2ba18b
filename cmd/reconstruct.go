package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fabrica-go/fabrica/app"
	"github.com/fabrica-go/fabrica/config"
	"github.com/fabrica-go/fabrica/infra/logger"
)

var reconstructCmd = &cobra.Command{
	Use:   "reconstruct <file>",
	Short: "Rebuild the objects of a document through the configured providers",
	Args:  cobra.ExactArgs(1),
	RunE:  reconstruct,
}

func init() {
	rootCmd.AddCommand(reconstructCmd)
}

func reconstruct(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()

	records, err := readDocument(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}
	objects, failures := svc.Loader.Reconstruct(records)
	for _, obj := range objects {
		fmt.Printf("created %q\n", obj.ObjectName())
	}
	if len(failures) > 0 {
		return fmt.Errorf("%d of %d record(s) failed", len(failures), len(records))
	}
	fmt.Printf("%d object(s) created\n", len(objects))
	return nil
}
