package portfolio

// AlternateListing describes one dual-listed instrument whose secondary
// class (e.g. a EUR-denominated ordinary share next to a USD depositary
// receipt) must be folded into the primary ticker.
type AlternateListing struct {
	PrimaryTicker     string
	AlternateCurrency string
	// ConversionRate is the fixed price of one unit of the alternate
	// currency in the reporting currency, applied at ingestion.
	ConversionRate float64
}

// Config carries the run configuration: the reporting currency and the
// table of alternate listings to consolidate. It is threaded explicitly
// through the pipeline so independent runs share no state.
type Config struct {
	ReportingCurrency string
	Listings          []AlternateListing
}

// DefaultConfig returns the configuration in production use today: USD
// reporting and a single EUR ordinary-share listing converted at a fixed
// rate.
func DefaultConfig() Config {
	return Config{
		ReportingCurrency: "USD",
		Listings: []AlternateListing{
			{PrimaryTicker: "ARGX", AlternateCurrency: "EUR", ConversionRate: 1.17},
		},
	}
}

// listing returns the alternate listing configured for a ticker, if any.
func (c Config) listing(ticker string) (AlternateListing, bool) {
	for _, l := range c.Listings {
		if l.PrimaryTicker == ticker {
			return l, true
		}
	}
	return AlternateListing{}, false
}
