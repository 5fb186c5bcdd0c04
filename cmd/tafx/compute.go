package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/StudioSol/set"
	"github.com/spf13/cobra"
	"github.com/xhit/go-str2duration/v2"

	"github.com/raykavin/tafx/pkg/core"
	"github.com/raykavin/tafx/pkg/feed"
	"github.com/raykavin/tafx/pkg/frame"
	"github.com/raykavin/tafx/pkg/plugin"
	"github.com/raykavin/tafx/pkg/storage"
	"github.com/raykavin/tafx/pkg/ta"
)

// Flags shared by the commands that read a candle file
var (
	csvFile      string
	pair         string
	csvTimeframe string
	resampleTo   string
	heikinAshi   bool
	function     string
	params       []string
	inputs       []string
	outputFile   string
	store        bool
	last         int
	window       string
)

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&csvFile, "csv", "", "Candle file (e.g. ./btc.csv)")
	cmd.Flags().StringVarP(&pair, "pair", "p", "", "Pair name recorded with stored results")
	cmd.Flags().StringVar(&csvTimeframe, "timeframe", "", "Timeframe of the file rows, required to resample")
	cmd.Flags().StringVar(&resampleTo, "resample", "", "Resample candles to this timeframe (default from feed.timeframe)")
	cmd.Flags().BoolVar(&heikinAshi, "heikin-ashi", false, "Convert candles to Heikin-Ashi")
	cmd.Flags().IntVar(&last, "last", 0, "Keep only the last N candles")
	cmd.Flags().StringVar(&window, "window", "", "Keep only the candles within this duration of the last one (e.g. 7d)")
}

func addFunctionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&function, "fn", "f", "", "Function name (see tafx list)")
	cmd.Flags().StringSliceVar(&params, "param", nil, "Parameter as key=value, repeatable")
	cmd.Flags().StringSliceVar(&inputs, "input", nil, "Input column, repeatable, replaces the defaults in order")
	_ = cmd.MarkFlagRequired("fn")
}

func buildComputeCmd() *cobra.Command {
	computeCmd := &cobra.Command{
		Use:   "compute",
		Short: "Run one function over a candle file",
		Args:  cobra.NoArgs,
		RunE:  runCompute,
	}

	addSourceFlags(computeCmd)
	addFunctionFlags(computeCmd)
	computeCmd.Flags().StringVarP(&outputFile, "out", "o", "", "Output CSV (default stdout)")
	computeCmd.Flags().BoolVar(&store, "store", false, "Save the result to the configured storage")
	_ = computeCmd.MarkFlagRequired("csv")

	return computeCmd
}

func runCompute(cmd *cobra.Command, _ []string) error {
	f, err := loadFrame(csvFile, sourceOptions())
	if err != nil {
		return err
	}

	kwargs, err := parseParams(params)
	if err != nil {
		return err
	}

	result, err := evaluate(f, plugin.Default(), function, inputs, kwargs)
	if err != nil {
		return err
	}

	if store {
		value, err := result.Get(function)
		if err != nil {
			return err
		}
		if err := saveResults(storage.NewResult(pair, function, kwargs, f.Time(), value)); err != nil {
			return err
		}
	}

	var structs []string
	if fn, err := plugin.Default().Lookup(function); err == nil && fn.IsStruct() {
		structs = []string{function}
	}
	flat, err := flatten(result, structs)
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), outputFile, flat)
}

func sourceOptions() feed.Options {
	opts := feed.Options{
		Pair:       pair,
		Timeframe:  csvTimeframe,
		Target:     resampleTo,
		HeikinAshi: heikinAshi || settings.Feed.HeikinAshi,
	}
	if opts.Target == "" {
		opts.Target = settings.Feed.Timeframe
	}
	return opts
}

// loadFrame reads candles from path into a frame indexed by candle time
func loadFrame(path string, opts feed.Options) (*frame.Frame, error) {
	candles, err := feed.LoadCSV(path, opts)
	if err != nil {
		return nil, err
	}
	if window != "" {
		d, err := str2duration.ParseDuration(window)
		if err != nil {
			return nil, fmt.Errorf("window %q: %w", window, err)
		}
		candles = feed.Limit(candles, d)
	}
	if last > 0 {
		if candles, err = feed.Tail(candles, last); err != nil {
			return nil, err
		}
	}
	if len(candles) == 0 {
		return nil, fmt.Errorf("%s: %w", path, core.ErrEmptyDataframe)
	}

	log.WithFields(map[string]any{
		"file":    path,
		"candles": len(candles),
		"from":    candles[0].Time,
		"to":      candles[len(candles)-1].Time,
	}).Debug("candles loaded")

	return feed.Frame(opts.Pair, candles)
}

// parseParams reads key=value pairs into keyword arguments
func parseParams(pairs []string) (frame.Kwargs, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	kwargs := make(frame.Kwargs, len(pairs))
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid param %q, expected key=value", p)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("param %s: %w", key, err)
		}
		kwargs[key] = v
	}
	return kwargs, nil
}

// evaluate adds the result of name to f under the function name
func evaluate(f *frame.Frame, r *plugin.Registry, name string, cols []string, kwargs frame.Kwargs) (*frame.Frame, error) {
	opts := []ta.Option{ta.Using(r), ta.Params(kwargs)}
	if len(cols) > 0 {
		opts = append(opts, ta.On(cols...))
	}
	if err := checkNames(f, name); err != nil {
		return nil, err
	}
	return f.WithColumns(frame.As(ta.Expr(name, opts...), name))
}

// checkNames rejects result names that would replace an existing column
func checkNames(f *frame.Frame, names ...string) error {
	existing := set.NewLinkedHashSetString(f.Names()...)
	for _, name := range names {
		if existing.InArray(name) {
			return fmt.Errorf("result %q would replace a column: %w", name, frame.ErrDuplicateColumn)
		}
	}
	return nil
}

// flatten replaces each named struct by its fields, renamed to
// struct_field so results of several functions never collide
func flatten(f *frame.Frame, structs []string) (*frame.Frame, error) {
	if len(structs) == 0 {
		return f, nil
	}

	nested := set.NewLinkedHashSetString(structs...)
	seen := set.NewLinkedHashSetString()
	var exprs []frame.Expr
	add := func(e frame.Expr, name string) error {
		if seen.InArray(name) {
			return fmt.Errorf("%q: %w", name, frame.ErrDuplicateColumn)
		}
		seen.Add(name)
		exprs = append(exprs, frame.As(e, name))
		return nil
	}

	for _, name := range f.Names() {
		if !nested.InArray(name) {
			if err := add(frame.Col(name), name); err != nil {
				return nil, err
			}
			continue
		}

		s, err := f.Struct(name)
		if err != nil {
			return nil, err
		}
		for _, field := range s.FieldNames() {
			if err := add(frame.Field(frame.Col(name), field), name+"_"+field); err != nil {
				return nil, err
			}
		}
	}

	return f.Select(exprs...)
}

func writeOutput(stdout io.Writer, path string, f *frame.Frame) error {
	if path == "" {
		return feed.WriteFrame(stdout, f)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := feed.WriteFrame(file, f); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	log.WithFields(map[string]any{
		"file": path,
		"rows": f.Height(),
	}).Info("results written")
	return nil
}

func saveResults(results ...*core.Result) error {
	db, err := storage.Open(settings.Storage.Driver, settings.Storage.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, result := range results {
		if err := db.Save(result); err != nil {
			return fmt.Errorf("could not store %s: %w", result.Function, err)
		}
		log.WithFields(map[string]any{
			"id":       result.ID,
			"function": result.Function,
		}).Info("result stored")
	}
	return nil
}
