// README: Weather report value and the two default reports.
package weather

type Report struct {
	Condition   string  `json:"condition"`
	Temperature float64 `json:"temperature"`
}

var (
	// Unconfigured is reported when no API key is set.
	Unconfigured = Report{Condition: "clear sky", Temperature: 20.0}

	// Unavailable is reported when the lookup fails for any reason.
	Unavailable = Report{Condition: "unknown", Temperature: 20.0}
)
