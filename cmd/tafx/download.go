package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/raykavin/tafx/pkg/feed/binance"
)

const dateLayout = "2006-01-02"

// Download command flags
var (
	downloadTimeframe string
	days              int
	startDate         string
	endDate           string
)

func buildDownloadCmd() *cobra.Command {
	downloadCmd := &cobra.Command{
		Use:   "download",
		Short: "Download historical candles from Binance",
		Args:  cobra.NoArgs,
		RunE:  runDownload,
	}

	downloadCmd.Flags().StringVarP(&pair, "pair", "p", "", "Trading pair (e.g. BTCUSDT)")
	downloadCmd.Flags().IntVarP(&days, "days", "d", 30, "Number of days up to now, ignored when start and end are set")
	downloadCmd.Flags().StringVarP(&startDate, "start", "s", "", "Start date (e.g. 2021-12-01)")
	downloadCmd.Flags().StringVarP(&endDate, "end", "e", "", "End date (e.g. 2021-12-31)")
	downloadCmd.Flags().StringVarP(&downloadTimeframe, "timeframe", "t", "", "Timeframe (e.g. 1h)")
	downloadCmd.Flags().StringVarP(&outputFile, "out", "o", "", "Output file path (e.g. ./btc.csv)")

	_ = downloadCmd.MarkFlagRequired("pair")
	_ = downloadCmd.MarkFlagRequired("timeframe")
	_ = downloadCmd.MarkFlagRequired("out")

	return downloadCmd
}

func runDownload(cmd *cobra.Command, _ []string) error {
	start, end, err := downloadRange(startDate, endDate, days, time.Now().UTC())
	if err != nil {
		return err
	}

	options := []binance.Option{
		binance.WithLogger(log),
		binance.WithProgress(cmd.ErrOrStderr()),
	}
	if settings.Binance.APIKey != "" {
		options = append(options, binance.WithCredentials(settings.Binance.APIKey, settings.Binance.SecretKey))
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return err
	}

	n, err := binance.NewDownloader(options...).Download(cmd.Context(), pair, downloadTimeframe, start, end, file)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	log.WithFields(map[string]any{
		"file":    outputFile,
		"candles": n,
	}).Info("download finished")
	return nil
}

// downloadRange resolves the [start, end) interval from the date flags,
// falling back to the last days before now
func downloadRange(startDate, endDate string, days int, now time.Time) (time.Time, time.Time, error) {
	if startDate == "" && endDate == "" {
		if days <= 0 {
			return time.Time{}, time.Time{}, fmt.Errorf("days must be positive, got %d", days)
		}
		return now.AddDate(0, 0, -days), now, nil
	}

	if startDate == "" || endDate == "" {
		return time.Time{}, time.Time{}, errors.New("start and end dates must be provided together")
	}

	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date format: %w", err)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date format: %w", err)
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("start %s is not before end %s", startDate, endDate)
	}
	return start, end, nil
}
