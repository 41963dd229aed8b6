package report

import (
	"errors"
	"fmt"
)

// NOTE: All report functions only display if the appropriate log level is
// set.  Below their log level they fail silently.

// ReportCompileError reports the error that ended a compilation pass.  Errors
// which are not compile errors are treated as internal compiler errors.
func ReportCompileError(err error) {
	var cerr *CompileError
	if !errors.As(err, &cerr) {
		ReportICE("%s", err)
		return
	}

	if cerr.IsInternal() {
		ReportICE("%s", cerr.Message)
		return
	}

	rep.m.Lock()
	defer rep.m.Unlock()

	rep.isErr = true
	if rep.logLevel > LogLevelSilent {
		rep.displayCompileError(cerr)
	}
}

// ReportICE reports an internal compiler error.  These result from a bug or
// a fixed limit of the compiler, never from the program being compiled.  They
// are always displayed regardless of log level.
func ReportICE(msg string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.isErr = true
	rep.displayICE(fmt.Sprintf(msg, args...))
}

// ReportFatal reports a fatal error.  These are expected errors that result
// from invalid configuration of some form: a missing token file, an invalid
// profile, an unwritable output path.  The caller is responsible for stopping.
func ReportFatal(msg string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.isErr = true
	if rep.logLevel > LogLevelSilent {
		rep.displayFatal(fmt.Sprintf(msg, args...))
	}
}

// ReportWarning reports a non-fatal problem, usually with configuration.
func ReportWarning(msg string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel >= LogLevelWarn {
		rep.displayWarning(fmt.Sprintf(msg, args...))
	}
}

// -----------------------------------------------------------------------------
// Below are the "aesthetic" reporting functions that only run at the verbose
// log level.

// ReportCompileHeader reports the compiler version and the selected output.
func ReportCompileHeader(profileName, format string) {
	if rep.logLevel == LogLevelVerbose {
		rep.displayCompileHeader(profileName, format)
	}
}

// ReportCompilationFinished reports the concluding message of compilation.
func ReportCompilationFinished(outputPath string, instrCount int) {
	if rep.logLevel == LogLevelVerbose {
		rep.displayCompilationFinished(!rep.isErr, outputPath, instrCount)
	}
}

// DisplayInfoMessage displays an informational message regardless of log
// level: eg. the compiler version.
func DisplayInfoMessage(tag, msg string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.displayInfo(tag, msg)
}
