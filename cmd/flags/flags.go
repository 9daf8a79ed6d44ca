package flags

var (
	// Database configuration
	DatabaseType string // sqlite or mysql
	DatabaseFile string // SQLite database file path
	DatabaseHost string
	DatabasePort string
	DatabaseUser string
	DatabasePass string
	DatabaseName string

	Listen  string
	DataDir string // root of theme storage
)
