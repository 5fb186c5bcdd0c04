package tafx

import (
	"os"
	"strconv"

	"github.com/raykavin/tafx/pkg/logger/zerolog"
	"github.com/raykavin/tafx/pkg/plugin"
)

const (
	defaultLogLevel      = "info"
	defaultLogTimeFormat = "2006-01-02 15:04:05"
	defaultLogColored    = "true"
	defaultLogJSON       = "false"
)

const (
	envLogLevel      = "TAFX_LOG_LEVEL"
	envLogTimeFormat = "TAFX_LOG_TIME_FORMAT"
	envLogColor      = "TAFX_LOG_COLOR"
	envLogJSON       = "TAFX_LOG_JSON"
)

func init() {
	log, err := loggerFromEnv()
	if err != nil {
		panic(err)
	}
	DefaultLog = log
	plugin.Default().SetLogger(DefaultLog)
}

func loggerFromEnv() (*zerolog.Adapter, error) {
	colored, err := parseBoolEnv(envLogColor, defaultLogColored)
	if err != nil {
		return nil, err
	}
	json, err := parseBoolEnv(envLogJSON, defaultLogJSON)
	if err != nil {
		return nil, err
	}

	return zerolog.New(zerolog.Options{
		Level:   getEnvWithDefault(envLogLevel, defaultLogLevel),
		Layout:  getEnvWithDefault(envLogTimeFormat, defaultLogTimeFormat),
		Colored: colored,
		JSON:    json,
	})
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key, defaultValue string) (bool, error) {
	return strconv.ParseBool(getEnvWithDefault(key, defaultValue))
}
