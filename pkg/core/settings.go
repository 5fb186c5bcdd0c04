package core

// Settings represents the main configuration for the application
type Settings struct {
	Log     LogSettings
	Storage StorageSettings
	Feed    FeedSettings
	Binance BinanceSettings
}

// LogSettings configures the default logger
type LogSettings struct {
	Level   string
	Layout  string // time layout used by the console writer
	Colored bool
	JSON    bool
}

// StorageSettings selects where computed results are persisted
type StorageSettings struct {
	Driver string // "buntdb", "sqlite" or "memory"
	Path   string
}

// FeedSettings controls how CSV candles are loaded
type FeedSettings struct {
	Timeframe  string // resample target, empty keeps the source timeframe
	HeikinAshi bool
}

// BinanceSettings holds the credentials used by the downloader
type BinanceSettings struct {
	APIKey    string
	SecretKey string
}
