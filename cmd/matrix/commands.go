package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/deidexdd-hash/mysticbot/internal/catalog"
	"github.com/deidexdd-hash/mysticbot/internal/matrix/handler"
	"github.com/deidexdd-hash/mysticbot/internal/matrix/service"
	"github.com/deidexdd-hash/mysticbot/internal/numerology"
	"github.com/deidexdd-hash/mysticbot/internal/profile/store"
)

// options are the flags shared by every subcommand.
type options struct {
	reduction string
	overflow  string
	tables    string
	json      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "matrix",
		Short:         "Psychomatrix readings, forecasts and compatibility",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.reduction, "reduction", "single", "reduction policy: single or iterative")
	root.PersistentFlags().StringVar(&opts.overflow, "overflow", "subtract", "count overflow policy: subtract or cap")
	root.PersistentFlags().StringVar(&opts.tables, "tables", "", "directory with matrix.yaml, tasks.yaml and forecasts.yaml")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "print JSON instead of text")

	root.AddCommand(newCalcCmd(opts), newForecastCmd(opts), newCompatCmd(opts))
	return root
}

func newCalcCmd(opts *options) *cobra.Command {
	var gender string
	cmd := &cobra.Command{
		Use:   "calc <DD.MM.YYYY>",
		Short: "Compute the matrix of a birth date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := numerology.ParseGender(gender)
			if err != nil {
				return err
			}
			svc, err := opts.service()
			if err != nil {
				return err
			}
			reading, err := svc.ReadingForDate(cmd.Context(), args[0], g)
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), handler.FromReading(reading))
			}
			return renderReading(cmd.OutOrStdout(), reading)
		},
	}
	cmd.Flags().StringVar(&gender, "gender", "", "male or female; empty prints both variants")
	return cmd
}

func newForecastCmd(opts *options) *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "forecast <DD.MM.YYYY>",
		Short: "Forecast the personal year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}
			forecast, err := svc.ForecastForDate(cmd.Context(), args[0], year)
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), handler.FromForecast(forecast))
			}
			return renderForecast(cmd.OutOrStdout(), forecast)
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "target year; defaults to the current year")
	return cmd
}

func newCompatCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compat <DD.MM.YYYY> <DD.MM.YYYY>",
		Short: "Score the compatibility of two birth dates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}
			result, err := svc.CompatibilityForDates(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), handler.FromCompatibility(result))
			}
			return renderCompatibility(cmd.OutOrStdout(), result)
		},
	}
}

// service builds a matrix service backed by a throwaway in-memory store.
func (o *options) service() (*service.Service, error) {
	reduction, err := numerology.ParseReductionPolicy(o.reduction)
	if err != nil {
		return nil, err
	}
	overflow, err := numerology.ParseOverflowPolicy(o.overflow)
	if err != nil {
		return nil, err
	}

	tables, err := catalog.Default()
	if o.tables != "" {
		tables, err = catalog.LoadDir(o.tables)
	}
	if err != nil {
		return nil, fmt.Errorf("load tables: %w", err)
	}

	engine := numerology.New(numerology.WithReduction(reduction), numerology.WithOverflow(overflow))
	return service.New(engine, tables, store.NewInMemory(),
		service.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}
