// Package feed loads candles from CSV files and reshapes them into frames
package feed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/StudioSol/set"
	"github.com/samber/lo"

	"github.com/raykavin/tafx/pkg/core"
	"github.com/raykavin/tafx/pkg/frame"
)

var (
	ErrInsufficientData = errors.New("insufficient data")
	ErrInvalidTimeframe = errors.New("invalid timeframe")
	ErrMissingColumn    = errors.New("missing column")
)

var defaultHeader = []string{"time", "open", "close", "low", "high", "volume"}

// Options controls how a CSV file becomes candles
type Options struct {
	Pair string

	// Timeframe of the rows in the file. Resampling needs it.
	Timeframe string

	// Resample to this timeframe when set and different from Timeframe
	Target string

	HeikinAshi bool
}

// LoadCSV reads the candles stored at path
func LoadCSV(path string, opts Options) ([]core.Candle, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	candles, err := ReadCSV(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return candles, nil
}

// ReadCSV parses candles. A first row starting with a number is data and
// the columns follow time,open,close,low,high,volume. Otherwise the first
// row names the columns and every non OHLCV column lands in the candle
// metadata. Times are unix seconds or RFC3339.
func ReadCSV(r io.Reader, opts Options) ([]core.Candle, error) {
	lines, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("no rows: %w", ErrInsufficientData)
	}

	header, extra, custom, err := parseHeader(lines[0])
	if err != nil {
		return nil, err
	}
	if custom {
		lines = lines[1:]
	}

	ha := core.NewHeikinAshi()
	candles := make([]core.Candle, 0, len(lines))
	for i, line := range lines {
		candle, err := parseLine(line, header, extra, opts.Pair)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if opts.HeikinAshi {
			candle = candle.ToHeikinAshi(ha)
		}
		candles = append(candles, candle)
	}

	if opts.Target != "" && opts.Target != opts.Timeframe {
		return Resample(candles, opts.Timeframe, opts.Target)
	}
	return candles, nil
}

func parseHeader(row []string) (header map[string]int, extra []string, custom bool, err error) {
	if _, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64); err == nil {
		return lo.SliceToMap(defaultHeader, func(name string) (string, int) {
			return name, lo.IndexOf(defaultHeader, name)
		}), nil, false, nil
	}

	header = make(map[string]int, len(row))
	for i, name := range row {
		name = strings.ToLower(strings.TrimSpace(name))
		header[name] = i
		if !lo.Contains(defaultHeader, name) {
			extra = append(extra, name)
		}
	}
	for _, name := range defaultHeader {
		if _, ok := header[name]; !ok {
			return nil, nil, false, fmt.Errorf("%q: %w", name, ErrMissingColumn)
		}
	}
	return header, extra, true, nil
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if ts, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(ts, 0).UTC(), nil
	}
	return time.Parse(time.RFC3339, s)
}

func parseLine(line []string, header map[string]int, extra []string, pair string) (core.Candle, error) {
	var err error
	candle := core.Candle{Pair: pair, Complete: true}

	if candle.Time, err = parseTime(line[header["time"]]); err != nil {
		return core.Candle{}, err
	}

	fields := []struct {
		name string
		dst  *float64
	}{
		{"open", &candle.Open},
		{"close", &candle.Close},
		{"low", &candle.Low},
		{"high", &candle.High},
		{"volume", &candle.Volume},
	}
	for _, f := range fields {
		if *f.dst, err = strconv.ParseFloat(strings.TrimSpace(line[header[f.name]]), 64); err != nil {
			return core.Candle{}, fmt.Errorf("%s: %w", f.name, err)
		}
	}

	if len(extra) > 0 {
		candle.Metadata = make(map[string]float64, len(extra))
		for _, name := range extra {
			value, err := strconv.ParseFloat(strings.TrimSpace(line[header[name]]), 64)
			if err != nil {
				return core.Candle{}, fmt.Errorf("%s: %w", name, err)
			}
			candle.Metadata[name] = value
		}
	}

	return candle, nil
}

// WriteCSV writes candles with a header row. Metadata columns follow the
// OHLCV ones in name order.
func WriteCSV(w io.Writer, candles []core.Candle, precision int) error {
	keys := set.NewLinkedHashSetString()
	for _, c := range candles {
		for k := range c.Metadata {
			keys.Add(k)
		}
	}
	extra := sortedKeys(keys)

	out := csv.NewWriter(w)
	if err := out.Write(append(append([]string{}, defaultHeader...), extra...)); err != nil {
		return err
	}
	for _, c := range candles {
		row := c.ToSlice(precision)
		for _, k := range extra {
			row = append(row, strconv.FormatFloat(c.Metadata[k], 'f', precision, 64))
		}
		if err := out.Write(row); err != nil {
			return err
		}
	}
	out.Flush()
	return out.Error()
}

func sortedKeys(keys *set.LinkedHashSetString) []string {
	var sorted []string
	for k := range keys.Iter() {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)
	return sorted
}

// Frame lays candles out as a frame indexed by candle time
func Frame(pair string, candles []core.Candle) (*frame.Frame, error) {
	return frame.FromDataframe(core.NewDataframe(pair, candles))
}

// WriteFrame writes every column of f, preceded by its time index when it
// has one. Structs must be unnested first. Missing values are left empty.
func WriteFrame(w io.Writer, f *frame.Frame) error {
	names := f.Names()
	cols := make([]*frame.Column, len(names))
	for i, name := range names {
		c, err := f.Column(name)
		if err != nil {
			return err
		}
		cols[i] = c
	}

	times := f.Time()
	header := names
	if len(times) > 0 {
		header = append([]string{"time"}, names...)
	}

	out := csv.NewWriter(w)
	if err := out.Write(header); err != nil {
		return err
	}
	for row := 0; row < f.Height(); row++ {
		record := make([]string, 0, len(header))
		if len(times) > 0 {
			record = append(record, strconv.FormatInt(times[row].Unix(), 10))
		}
		for _, c := range cols {
			record = append(record, formatCell(c, row))
		}
		if err := out.Write(record); err != nil {
			return err
		}
	}
	out.Flush()
	return out.Error()
}

func formatCell(c *frame.Column, row int) string {
	v, ok := c.At(row)
	if !ok || math.IsNaN(v) {
		return ""
	}
	if c.DType() == frame.Int32 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
