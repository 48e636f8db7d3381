package constants

const (
	// AppName is used for the config directory, keyring service name and
	// the Postgres search_path.
	AppName = "habit"

	// DefaultKeyringUser is the keyring account under which the database
	// connection string is stored.
	DefaultKeyringUser = "db-connection"

	// ConnectionEnvVar allows supplying a PostgreSQL connection string
	// without embedding credentials on the command line.
	ConnectionEnvVar = "HABIT_DB_CONNECTION"
)

const (
	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"
)

const (
	// PresetToday filters events to the reference date.
	PresetToday = "today"
	// PresetThisWeek filters events to Monday..reference date of the current week.
	PresetThisWeek = "this_week"
)
