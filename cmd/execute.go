package cmd

import (
	"os"

	"github.com/ComedicChimera/olive"

	"pl0c/common"
	"pl0c/profile"
	"pl0c/report"
)

// Execute is the main entry point for the `pl0c` CLI utility.  It returns the
// process exit code.
func Execute() int {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("pl0c", "pl0c compiles PL/0 token files into PM/0 code", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("error")

	buildCmd := cli.AddSubcommand("build", "compile a token file", true)
	buildCmd.AddPrimaryArg("token-file", "the path to the token file", false)
	buildCmd.AddStringArg("output", "o", "the path to the object file", false)
	buildCmd.AddStringArg("profile", "p", "the name of the profile to build", false)
	buildCmd.AddSelectorArg("outmode", "m", "the output format", false, []string{profile.FormatObj, profile.FormatLLVM})
	buildCmd.AddSelectorArg("listing", "ls", "the listing style", false, []string{"plain", "table", "none"})
	buildCmd.AddFlag("entry-jump", "ej", "emit a jump to the program block ahead of all other code")
	buildCmd.AddFlag("no-color", "nc", "disable coloured console output")

	cli.AddSubcommand("init", "write a default profile file to the working directory", false)
	cli.AddSubcommand("version", "print the pl0c version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportFatal("%s", err)
		return 1
	}

	logLevel, _ := report.LogLevelFromName(result.Arguments["loglevel"].(string))
	report.InitReporter(logLevel, true)

	// process the inputed command line; no subcommand builds with the
	// profile's settings alone
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "":
		return execBuildCommand(nil, logLevel)
	case "build":
		return execBuildCommand(subResult, logLevel)
	case "init":
		return execInitCommand()
	case "version":
		report.DisplayInfoMessage("pl0c version", common.PL0CVersion)
	}

	return 0
}

// execBuildCommand executes the build subcommand.  result may be nil if no
// subcommand was given.
func execBuildCommand(result *olive.ArgParseResult, logLevel int) int {
	selectedProfile := ""
	if result != nil {
		if profArgVal, ok := result.Arguments["profile"]; ok {
			selectedProfile = profArgVal.(string)
		}
	}

	prof, err := profile.Load(common.ProfileFileName, selectedProfile)
	if err != nil {
		report.ReportFatal("failed to load build profile: %s", err)
		return 1
	}

	if result != nil {
		applyArgs(prof, result)
	}

	if err := prof.Validate(); err != nil {
		report.ReportFatal("invalid build configuration: %s", err)
		return 1
	}

	report.InitReporter(logLevel, prof.Color)

	return NewCompiler(prof, os.Stdout).Compile()
}

// applyArgs overrides profile values with those given on the command line.
func applyArgs(prof *profile.BuildProfile, result *olive.ArgParseResult) {
	if tokenFile, _ := result.PrimaryArg(); tokenFile != "" {
		prof.InputPath = tokenFile
	}

	if output, ok := result.Arguments["output"]; ok {
		prof.OutputPath = output.(string)
	}

	if outmode, ok := result.Arguments["outmode"]; ok {
		prof.Format = outmode.(string)
	}

	if listing, ok := result.Arguments["listing"]; ok {
		prof.Listing = listing.(string)
	}

	if result.HasFlag("entry-jump") {
		prof.EntryJump = true
	}

	if result.HasFlag("no-color") {
		prof.Color = false
	}
}

// execInitCommand writes a default profile file to the working directory.  An
// existing profile file is never overwritten.
func execInitCommand() int {
	f, err := os.OpenFile(common.ProfileFileName, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		report.ReportFatal("failed to create profile file: %s", err)
		return 1
	}
	defer f.Close()

	if err := profile.WriteDefault(f); err != nil {
		report.ReportFatal("failed to write profile file: %s", err)
		return 1
	}

	report.DisplayInfoMessage("Created", common.ProfileFileName)
	return 0
}
