package log

import "strings"

type Level int

const (
	TRACE = Level(iota)
	DEBUG
	INFO
	WARN
	ERROR
	FATAL

	QUIET
)

var levelLabels = [...]string{
	TRACE: "TRACE",
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
	QUIET: "QUIET",
}

// String returns the upper-case label. Out of range levels print as QUIET.
func (l Level) String() string {
	if l < TRACE || l > QUIET {
		return levelLabels[QUIET]
	}

	return levelLabels[l]
}

// FromString parses level label case-insensitively. Unknown labels are QUIET.
func FromString(l string) Level {
	l = strings.ToUpper(l)
	for lvl := TRACE; lvl < QUIET; lvl++ {
		if levelLabels[lvl] == l {
			return lvl
		}
	}

	return QUIET
}
