package report

import (
	"io"
	"os"
	"sync"
)

// Reporter is responsible for reporting errors and other messages to the user
// during compilation.  The reporter respects the set log level.
type Reporter struct {
	// The mutex used to synchonize different reporting calls.
	m *sync.Mutex

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int

	// Whether output should be styled with terminal colours.
	color bool

	// Where all messages are written.
	out io.Writer

	// Indicates whether or not an error has been reported.
	isErr bool
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user (default).
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all compilation messages to the user.
)

// rep is the global reporter instance.
var rep = newReporter(LogLevelError, true, os.Stdout)

func newReporter(logLevel int, color bool, out io.Writer) *Reporter {
	return &Reporter{
		m:        &sync.Mutex{},
		logLevel: logLevel,
		color:    color,
		out:      out,
	}
}

// InitReporter initializes the global reporter with the given log level and
// colour setting.  Messages are written to standard output.
func InitReporter(logLevel int, color bool) {
	rep = newReporter(logLevel, color, os.Stdout)
}

// InitReporterTo is like InitReporter but writes all messages to out.
func InitReporterTo(out io.Writer, logLevel int, color bool) {
	rep = newReporter(logLevel, color, out)
}

// LogLevelFromName converts a log level name to its enumerated value.
func LogLevelFromName(name string) (int, bool) {
	switch name {
	case "silent":
		return LogLevelSilent, true
	case "error":
		return LogLevelError, true
	case "warn":
		return LogLevelWarn, true
	case "verbose":
		return LogLevelVerbose, true
	}

	return LogLevelError, false
}
