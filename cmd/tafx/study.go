package main

import (
	"errors"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/raykavin/tafx/pkg/core"
	"github.com/raykavin/tafx/pkg/plugin"
	"github.com/raykavin/tafx/pkg/storage"
	"github.com/raykavin/tafx/pkg/study"
)

func buildStudyCmd() *cobra.Command {
	studyCmd := &cobra.Command{
		Use:   "study <file.hcl>",
		Short: "Run every indicator of a study file",
		Args:  cobra.ExactArgs(1),
		RunE:  runStudy,
	}

	studyCmd.Flags().StringVar(&csvFile, "csv", "", "Candle file, overrides the study source path")
	studyCmd.Flags().StringVarP(&outputFile, "out", "o", "", "Output CSV, overrides the study output path")
	studyCmd.Flags().BoolVar(&store, "store", false, "Save every result to the configured storage")

	return studyCmd
}

func runStudy(cmd *cobra.Command, args []string) error {
	s, err := study.Load(args[0])
	if err != nil {
		return err
	}

	opts := s.Options()
	if opts.Target == "" {
		opts.Target = settings.Feed.Timeframe
	}
	opts.HeikinAshi = opts.HeikinAshi || settings.Feed.HeikinAshi

	source := csvFile
	if source == "" && s.Source != nil {
		// relative to the study file
		source = s.Source.Path
		if !filepath.IsAbs(source) {
			source = filepath.Join(filepath.Dir(args[0]), source)
		}
	}
	if source == "" {
		return errors.New("no candle file, set --csv or add a source block")
	}

	f, err := loadFrame(source, opts)
	if err != nil {
		return err
	}

	r := plugin.Default()
	exprs, err := s.Exprs(r)
	if err != nil {
		return err
	}
	names := lo.Map(s.Indicators, func(ind study.Indicator, _ int) string { return ind.Name })
	if err := checkNames(f, names...); err != nil {
		return err
	}

	result, err := f.WithColumns(exprs...)
	if err != nil {
		return err
	}
	log.WithField("indicators", len(exprs)).Info("study computed")

	if store || (s.Output != nil && s.Output.Store) {
		results := make([]*core.Result, 0, len(s.Indicators))
		for _, ind := range s.Indicators {
			value, err := result.Get(ind.Name)
			if err != nil {
				return err
			}
			results = append(results, storage.NewResult(opts.Pair, ind.Function, ind.Kwargs(), f.Time(), value))
		}
		if err := saveResults(results...); err != nil {
			return err
		}
	}

	flat, err := flatten(result, s.Structs(r))
	if err != nil {
		return err
	}

	out := outputFile
	if out == "" && s.Output != nil {
		out = s.Output.Path
	}
	return writeOutput(cmd.OutOrStdout(), out, flat)
}
