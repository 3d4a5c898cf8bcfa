package count

// Constants defining default values for configuration options. These are
// used when setting up Viper defaults during configuration loading.
const (
	// DefaultOutputFormat is the default format for run output.
	DefaultOutputFormat = OutputFormatText
	// DefaultVerbose is the default state for verbose logging.
	DefaultVerbose = false
)

// Constants related to the report schema.
const (
	// ReportSchemaVersion indicates the version of the JSON/YAML report
	// structure. Increment on incompatible changes to Report.
	ReportSchemaVersion = "1.0"
)

// csvDelimiter separates filenames in a CSV manifest. Fields carry no
// quoting or escaping, so a filename containing the delimiter is
// inexpressible.
const csvDelimiter = ","
