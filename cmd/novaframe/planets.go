package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/tuannm99/novaframe/internal/render"
	"github.com/tuannm99/novaframe/pkg/frame"
)

type Planet struct {
	MassKg    float64
	RadiusM   float64
	Habitable bool
}

type PlanetRow = frame.Cons[float64, frame.Cons[float64, frame.Cons[bool, frame.Nil]]]

var planetMapper = frame.Mapper[Planet, PlanetRow]{
	ToRow: func(p Planet) PlanetRow {
		return frame.Prepend(p.MassKg, frame.Prepend(p.RadiusM, frame.Prepend(p.Habitable, frame.Nil{})))
	},
	FromRow: func(r PlanetRow) Planet {
		return Planet{MassKg: r.Head, RadiusM: r.Tail.Head, Habitable: r.Tail.Tail.Head}
	},
}

var solarPlanets = []Planet{
	{MassKg: 5.976e24, RadiusM: 6.37814e6, Habitable: true},
	{MassKg: 6.421e23, RadiusM: 3.3972e6, Habitable: false},
}

func newPlanetsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "planets",
		Short: "Store Earth and Mars in a frame and print its columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := frame.NewFrame[PlanetRow]()
			f.Grow(max(opts.cfg.Frame.Capacity, len(solarPlanets)))
			for _, p := range solarPlanets {
				f.Push(planetMapper.ToRow(p))
			}
			if err := frame.Validate(f); err != nil {
				return err
			}

			mass, rest := frame.Split(f)
			radius, rest2 := frame.Split(rest)
			habitable, _ := frame.Split(rest2)
			out := cmd.OutOrStdout()
			fmt.Fprint(out, render.Columns(
				[]string{"mass_kg", "radius_m", "habitable"},
				[][]string{render.Strings(mass), render.Strings(radius), render.Strings(habitable)},
			))

			records := slices.Collect(frame.Records(f, planetMapper))
			slog.Info("planets: materialized records", "app", opts.cfg.AppName, "count", len(records))
			for _, p := range records {
				fmt.Fprintf(out, "%+v\n", p)
			}
			return nil
		},
	}
}

func newWidthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "width",
		Short: "Print the number of columns of the planet schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), frame.Width[PlanetRow]())
			return nil
		},
	}
}
