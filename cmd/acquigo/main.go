// Command acquigo loads CHAT transcript corpora into a SQLite
// database.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kittclouds/acquigo/internal/corpus"
	"github.com/kittclouds/acquigo/internal/store"
)

var (
	cfgPath string
	dryRun  bool
)

func main() {
	root := &cobra.Command{
		Use:          "acquigo",
		Short:        "CHAT corpus loader",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default acquigo.yaml)")

	load := &cobra.Command{
		Use:   "load",
		Short: "Parse the configured corpora and write them to the database",
		RunE:  runLoad,
	}
	load.Flags().BoolVar(&dryRun, "dry-run", false, "parse everything but keep results in memory")
	root.AddCommand(load)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runLoad(cmd *cobra.Command, args []string) error {
	cfg, err := corpus.LoadConfig(cfgPath)
	if err != nil {
		return err
	}

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	var st store.Storer
	switch {
	case dryRun:
		st = store.NewMemStore()
	case cfg.DB == "":
		st, err = store.NewSQLiteStore()
	default:
		st, err = store.NewSQLiteStoreWithDSN(cfg.DB)
	}
	if err != nil {
		return err
	}
	defer st.Close()

	return corpus.NewDriver(cfg, st).Run(cmd.Context())
}
