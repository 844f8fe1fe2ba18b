package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fabrica-go/fabrica/app"
	"github.com/fabrica-go/fabrica/config"
	"github.com/fabrica-go/fabrica/core/document"
	"github.com/fabrica-go/fabrica/core/instance"
	"github.com/fabrica-go/fabrica/infra/logger"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "fabrica",
	Short: "Object factory registry service",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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
	return svc.Run(ctx)
}

// readDocument loads the identity records from path, choosing the codec by
// file extension (.xml for XML, anything else binary).
func readDocument(path string) ([]instance.FactoryInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if strings.ToLower(filepath.Ext(path)) == ".xml" {
		return document.ReadXML(f)
	}
	return document.ReadBinary(f)
}

// writeDocument writes records to path, choosing the codec by extension.
func writeDocument(path string, records []instance.FactoryInfo) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if strings.ToLower(filepath.Ext(path)) == ".xml" {
		err = document.WriteXML(f, records)
	} else {
		err = document.WriteBinary(f, records)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
