package cmd

// Config carries everything the application needs at startup.
//
// StorageBackend selects between the durable postgres storage and the
// in-memory storage used for local runs. Any value other than "memory"
// means postgres.
type Config struct {
	HTTPPort       string
	StorageBackend string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
}

// UsesPostgres reports whether the configuration asks for the durable
// postgres backend.
func (c Config) UsesPostgres() bool {
	return c.StorageBackend != "memory"
}
