package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/raykavin/tafx/pkg/frame"
	"github.com/raykavin/tafx/pkg/metric"
	"github.com/raykavin/tafx/pkg/plugin"
)

var (
	field      string
	bins       int
	samples    int
	confidence float64
	seed       int64
)

func buildDescribeCmd() *cobra.Command {
	describeCmd := &cobra.Command{
		Use:   "describe",
		Short: "Summary statistics and histogram of a function result",
		Args:  cobra.NoArgs,
		RunE:  runDescribe,
	}

	addSourceFlags(describeCmd)
	addFunctionFlags(describeCmd)
	describeCmd.Flags().StringVar(&field, "field", "", "Output field of a multi-output function (default the first)")
	describeCmd.Flags().IntVar(&bins, "bins", 20, "Histogram buckets")
	describeCmd.Flags().IntVar(&samples, "bootstrap", 0, "Bootstrap samples for a confidence interval of the mean, 0 disables")
	describeCmd.Flags().Float64Var(&confidence, "confidence", 0.95, "Bootstrap confidence level")
	describeCmd.Flags().Int64Var(&seed, "seed", 1, "Bootstrap random seed")
	_ = describeCmd.MarkFlagRequired("csv")

	return describeCmd
}

func runDescribe(cmd *cobra.Command, _ []string) error {
	if bins <= 0 {
		return fmt.Errorf("--bins must be positive, got %d: %w", bins, metric.ErrInvalidBins)
	}

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

	values, label, err := resultValues(result, function, field)
	if err != nil {
		return err
	}
	return describe(cmd.OutOrStdout(), label, values)
}

// resultValues returns the series of name, or one of its fields when the
// result is a struct
func resultValues(f *frame.Frame, name, field string) ([]float64, string, error) {
	v, err := f.Get(name)
	if err != nil {
		return nil, "", err
	}

	switch v := v.(type) {
	case *frame.Column:
		if field != "" {
			return nil, "", fmt.Errorf("%s has a single output: %w", name, frame.ErrNotStruct)
		}
		return v.Float64(), name, nil
	case *frame.Struct:
		if field == "" {
			field = v.FieldNames()[0]
		}
		c, err := v.Field(field)
		if err != nil {
			return nil, "", err
		}
		return c.Float64(), name + "." + field, nil
	default:
		return nil, "", fmt.Errorf("%s: %w", name, frame.ErrDType)
	}
}

func describe(w io.Writer, label string, values []float64) error {
	summary := metric.Describe(values)
	fmt.Fprintf(w, "%s\n%s\n", label, summary)

	if err := metric.Histogram(w, values, bins); err != nil {
		return err
	}

	if defined := metric.Finite(values); samples > 0 && len(defined) > 0 {
		interval := metric.Bootstrap(defined, metric.Mean, samples, confidence, rand.New(rand.NewSource(seed)))
		fmt.Fprintf(w, "\nmean %.0f%% CI [%.4f, %.4f] (bootstrap mean %.4f, stddev %.4f)\n",
			confidence*100, interval.Lower, interval.Upper, interval.Mean, interval.StdDev)
	}
	return nil
}
