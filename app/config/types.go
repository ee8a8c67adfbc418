package config

// SeedFeed is a single seed feed file: one YAML document per feed URL,
// registered into the database at startup.
type SeedFeed struct {
	URL string `yaml:"url"`
}
