package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fabrica-go/fabrica/app"
	"github.com/fabrica-go/fabrica/config"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the factories and tags exposed by the configured providers",
	RunE:  listTags,
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}

func listTags(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer svc.Close() //nolint:errcheck

	for _, factoryTag := range svc.Registry.Factories() {
		fmt.Printf("%s: %s\n", factoryTag, strings.Join(svc.Registry.Tags(factoryTag), ", "))
	}
	return nil
}
