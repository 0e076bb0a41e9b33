package models

// LogRecord is one row of the access log export, fields taken verbatim by position.
type LogRecord struct {
	ResourcePath string // column 0
	Timestamp    string // column 1, "YYYY-MM-DD HH:MM:SS"
	UserAgent    string // column 2
}
