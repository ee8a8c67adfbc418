package cfg

type Cfg struct {
	// Application configuration
	Port     string
	DBFile   string
	FeedsDir string

	// Search configuration
	FetchTimeout  int // seconds
	SearchWorkers int

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
