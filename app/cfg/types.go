package cfg

type Cfg struct {
	// Feed configuration
	FeedURL     string
	MaxArticles int
	Timeout     int

	// Output configuration
	OutputDir  string
	PolicyFile string

	// Application metadata
	UserAgent string
	Debug     bool
	Version   string
}
