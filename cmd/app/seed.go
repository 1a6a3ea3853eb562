package main

import (
	"errors"
	"fmt"

	"kitchenpos/cmd"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "seed",
		Short: "Load menus and tables from a YAML catalog file",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.StorageDriver == cmd.StorageDriverMemory {
				return errors.New("seed needs persistent storage; the memory store is seeded by serve via CATALOG_FILE")
			}
			if file == "" {
				file = cfg.CatalogFile
			}
			if file == "" {
				return errors.New("no catalog file given (use --file or CATALOG_FILE)")
			}

			logger := newLogger(cfg)
			uowFactory, closeStorage, err := openStorage(cfg)
			if err != nil {
				return err
			}
			defer closeStorage()

			app := cmd.NewCompositionRoot(cfg, uowFactory, nil, logger)
			if err := seedCatalog(c.Context(), &app, file); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "catalog loaded from %s\n", file)
			return nil
		},
	}
	c.Flags().StringVarP(&file, "file", "f", "", "catalog YAML file (defaults to CATALOG_FILE)")
	return c
}
