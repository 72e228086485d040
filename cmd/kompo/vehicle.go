// vehicle subcommand: exercises the construct package.
package main

import (
	"github.com/spf13/cobra"

	"github.com/sghaida/kompo/construct"
)

var (
	flagModel   string
	flagYear    int
	flagMiles   int
	flagDoors   int
	flagColor   string
	flagState   string
	flagClosure bool
)

var vehicleCmd = &cobra.Command{
	Use:   "vehicle",
	Short: "Construct a vehicle and print its description",
	Long: `vehicle runs the parameterized initializer with the given fields;
absent fields receive the documented defaults (doors 4, color silver, state
"brand new").

With --closure the per-instance closure form is used instead of the shared
method; the output is identical.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := construct.Options{
			Model: flagModel,
			Year:  flagYear,
			Miles: flagMiles,
			Doors: flagDoors,
			Color: flagColor,
			State: flagState,
		}

		if flagClosure {
			v := construct.NewSelfContained(opts)
			cmd.Println(v.Describe())
			cmd.Printf("doors: %d, color: %s, state: %s\n", v.Doors, v.Color, v.State)
			return
		}

		v := construct.NewCar(opts)
		cmd.Println(v.Describe())
		cmd.Printf("doors: %d, color: %s, state: %s\n", v.Doors, v.Color, v.State)
	},
}

func init() {
	vehicleCmd.Flags().StringVar(&flagModel, "model", "Ford Escort", "vehicle model")
	vehicleCmd.Flags().IntVar(&flagYear, "year", 2009, "model year")
	vehicleCmd.Flags().IntVar(&flagMiles, "miles", 20000, "distance traveled")
	vehicleCmd.Flags().IntVar(&flagDoors, "doors", 0, "door count (default substituted when omitted)")
	vehicleCmd.Flags().StringVar(&flagColor, "color", "", "color (default substituted when omitted)")
	vehicleCmd.Flags().StringVar(&flagState, "state", "", "condition (default substituted when omitted)")
	vehicleCmd.Flags().BoolVar(&flagClosure, "closure", false, "use the per-instance closure form")
}
