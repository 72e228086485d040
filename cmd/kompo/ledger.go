// ledger subcommand: exercises the store package.
package main

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sghaida/kompo/store"
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Work with the SQLite-backed item ledger",
}

var ledgerAddCmd = &cobra.Command{
	Use:   "add <name> <price>",
	Short: "Persist a priced item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		price, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return err
		}

		s, shared, err := openLedger()
		if err != nil {
			return err
		}
		defer closeLedger(s, shared)

		item, err := s.AddItem(args[0], price)
		if err != nil {
			return err
		}

		logger.Debug("item persisted", zap.String("id", item.ID))
		cmd.Printf("added %s (%s) at %.2f\n", item.Name, item.ID, item.Price)
		return nil
	},
}

var ledgerListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all persisted items with count and total",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, shared, err := openLedger()
		if err != nil {
			return err
		}
		defer closeLedger(s, shared)

		items, err := s.Items()
		if err != nil {
			return err
		}
		for _, it := range items {
			cmd.Printf("%s\t%.2f\n", it.Name, it.Price)
		}

		total, err := s.Total()
		if err != nil {
			return err
		}
		cmd.Printf("count: %d\n", len(items))
		cmd.Printf("total: %.2f\n", total)
		return nil
	},
}

func init() {
	ledgerCmd.AddCommand(ledgerAddCmd)
	ledgerCmd.AddCommand(ledgerListCmd)
}

// openLedger opens the configured ledger; ":memory:" routes to the shared
// process-wide store so repeated in-process calls see the same data.
func openLedger() (s *store.Store, shared bool, err error) {
	path := cfg.GetString(cfgKeyStorePath)
	if path == ":memory:" {
		return store.Shared(), true, nil
	}
	s, err = store.Open(path)
	return s, false, err
}

// closeLedger closes file-backed ledgers; the shared in-memory store lives
// for the process lifetime.
func closeLedger(s *store.Store, shared bool) {
	if shared {
		return
	}
	if err := s.Close(); err != nil {
		logger.Warn("close ledger", zap.Error(err))
	}
}
