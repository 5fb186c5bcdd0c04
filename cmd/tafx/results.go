package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/raykavin/tafx/pkg/core"
	"github.com/raykavin/tafx/pkg/feed"
	"github.com/raykavin/tafx/pkg/frame"
	"github.com/raykavin/tafx/pkg/storage"
)

var (
	resultID    int64
	resultPair  string
	resultFns   []string
	resultSince string
)

func buildResultsCmd() *cobra.Command {
	resultsCmd := &cobra.Command{
		Use:   "results",
		Short: "List stored results, or print one with --id",
		Args:  cobra.NoArgs,
		RunE:  runResults,
	}

	resultsCmd.Flags().Int64Var(&resultID, "id", 0, "Print the values of one result as CSV")
	resultsCmd.Flags().StringVarP(&resultPair, "pair", "p", "", "Only results of this pair")
	resultsCmd.Flags().StringSliceVarP(&resultFns, "fn", "f", nil, "Only results of these functions")
	resultsCmd.Flags().StringVar(&resultSince, "since", "", "Only results stored after this date (e.g. 2024-01-31)")

	return resultsCmd
}

func runResults(cmd *cobra.Command, _ []string) error {
	db, err := storage.Open(settings.Storage.Driver, settings.Storage.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	if resultID > 0 {
		result, err := db.Get(resultID)
		if err != nil {
			return err
		}
		return writeResult(cmd.OutOrStdout(), result)
	}

	var filters []core.ResultFilter
	if resultPair != "" {
		filters = append(filters, core.WithPair(resultPair))
	}
	if len(resultFns) > 0 {
		filters = append(filters, core.WithFunction(resultFns...))
	}
	if resultSince != "" {
		since, err := time.Parse(dateLayout, resultSince)
		if err != nil {
			return fmt.Errorf("invalid since date format: %w", err)
		}
		filters = append(filters, core.WithCreatedAfter(since))
	}

	results, err := db.Results(filters...)
	if err != nil {
		return err
	}
	printResults(cmd.OutOrStdout(), results)
	return nil
}

func printResults(w io.Writer, results []*core.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Pair", "Function", "Params", "Fields", "Rows", "Created"})
	table.SetAutoWrapText(false)
	for _, r := range results {
		table.Append([]string{
			strconv.FormatInt(r.ID, 10),
			r.Pair,
			r.Function,
			frame.Kwargs(r.Params).String(),
			strings.Join(r.Fields, ", "),
			strconv.Itoa(len(r.Time)),
			r.CreatedAt.Format(time.DateTime),
		})
	}
	table.Render()
}

// writeResult prints the stored series of a result with their time index
func writeResult(w io.Writer, r *core.Result) error {
	values := make([]frame.Value, 0, len(r.Fields))
	for _, name := range r.Fields {
		values = append(values, frame.NewFloat64(name, r.Values[name]))
	}
	f, err := frame.New(values...)
	if err != nil {
		return err
	}
	if len(r.Time) > 0 {
		if f, err = f.WithTime(r.Time); err != nil {
			return err
		}
	}
	return feed.WriteFrame(w, f)
}
