// basket subcommand: exercises the capsule package.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sghaida/kompo/capsule"
)

var flagReveal bool

var basketCmd = &cobra.Command{
	Use:   "basket [name=price ...]",
	Short: "Fill an encapsulated basket and print count and total",
	Long: `basket constructs an encapsulated-state container, adds the given
name=price items, and prints the count and total. The hidden item sequence is
only reachable through the operation set.

With --reveal the flattened export surface (bound function values) is used
instead of the method form; the observable behavior is identical.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := parseItems(args)
		if err != nil {
			return err
		}

		var (
			addItem func(string, float64)
			count   func() int
			total   func() float64
		)
		if flagReveal {
			r := capsule.Reveal()
			addItem, count, total = r.AddItem, r.Count, r.Total
		} else {
			b := capsule.NewBasket()
			addItem, count, total = b.AddItem, b.Count, b.Total
		}

		for _, it := range items {
			addItem(it.name, it.price)
			logger.Debug("item added", zap.String("name", it.name), zap.Float64("price", it.price))
		}

		cmd.Printf("count: %d\n", count())
		cmd.Printf("total: %.2f\n", total())
		return nil
	},
}

func init() {
	basketCmd.Flags().BoolVar(&flagReveal, "reveal", false, "use the flattened export surface")
}

type parsedItem struct {
	name  string
	price float64
}

// parseItems turns "name=price" arguments into items.
func parseItems(args []string) ([]parsedItem, error) {
	items := make([]parsedItem, 0, len(args))
	for _, arg := range args {
		name, rawPrice, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid item %q, want name=price", arg)
		}
		price, err := strconv.ParseFloat(rawPrice, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid price in %q: %w", arg, err)
		}
		items = append(items, parsedItem{name: name, price: price})
	}
	return items, nil
}
