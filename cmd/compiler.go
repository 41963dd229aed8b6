// Package cmd is the top-level "driver" package for pl0c: it contains the
// functionality for parsing command-line arguments, loading build profiles,
// and running the phases of the compiler.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"pl0c/generate"
	"pl0c/ir"
	"pl0c/profile"
	"pl0c/report"
	"pl0c/syntax"
)

// Compiler represents the overall state and configuration of one compilation.
type Compiler struct {
	// profile is the build profile being compiled with.
	profile *profile.BuildProfile

	// listingOut is where the listing is written.
	listingOut io.Writer

	// result is the output of the parser once it has succeeded.
	result *syntax.Result
}

// NewCompiler creates a new compiler for the given profile which writes its
// listing to listingOut.
func NewCompiler(prof *profile.BuildProfile, listingOut io.Writer) *Compiler {
	return &Compiler{
		profile:    prof,
		listingOut: listingOut,
	}
}

// Compile runs every phase of compilation.  It returns the process exit code.
func (c *Compiler) Compile() int {
	report.ReportCompileHeader(c.profile.Name, c.profile.Format)

	toks, ok := c.readTokens()
	if !ok {
		return 1
	}

	if !c.parse(toks) {
		return 1
	}

	if err := ir.WriteListing(c.listingOut, c.profile.Listing, c.result.Code, c.result.Symbols); err != nil {
		report.ReportFatal("failed to write listing: %s", err)
		return 1
	}

	if !c.writeOutput() {
		return 1
	}

	report.ReportCompilationFinished(c.profile.OutputPath, len(c.result.Code))
	return 0
}

// readTokens loads the token stream from the profile's input file.
func (c *Compiler) readTokens() ([]*syntax.Token, bool) {
	f, err := os.Open(c.profile.InputPath)
	if err != nil {
		report.ReportFatal("failed to open token file `%s`: %s", c.profile.InputPath, err)
		return nil, false
	}
	defer f.Close()

	toks, err := syntax.ReadTokens(f)
	if err != nil {
		report.ReportFatal("%s", err)
		return nil, false
	}

	return toks, true
}

// parse runs the parser and code generator over the token stream.
func (c *Compiler) parse(toks []*syntax.Token) bool {
	result, err := syntax.Compile(toks, syntax.Options{
		MaxSymbols: c.profile.MaxSymbols,
		MaxCode:    c.profile.MaxCode,
		EntryJump:  c.profile.EntryJump,
	})

	if err != nil {
		c.fail(err)
		return false
	}

	c.result = result
	return true
}

// writeOutput writes the compiled program in the profile's output format.
func (c *Compiler) writeOutput() bool {
	var content string
	switch c.profile.Format {
	case profile.FormatLLVM:
		mod, err := generate.NewGenerator(c.result.Code).Generate()
		if err != nil {
			c.fail(err)
			return false
		}

		content = mod.String()
	default:
		sb := &strings.Builder{}
		if err := ir.WriteObject(sb, c.result.Code); err != nil {
			report.ReportFatal("failed to encode object code: %s", err)
			return false
		}

		content = sb.String()
	}

	if err := writeOutputFile(c.profile.OutputPath, content); err != nil {
		report.ReportFatal("%s", err)
		return false
	}

	return true
}

// fail reports the error that ended compilation and replaces the object file
// with its diagnostic.
func (c *Compiler) fail(err error) {
	report.ReportCompileError(err)

	if werr := writeOutputFile(c.profile.OutputPath, err.Error()+"\n"); werr != nil {
		report.ReportFatal("%s", werr)
		return
	}

	report.ReportCompilationFinished(c.profile.OutputPath, 0)
}

// -----------------------------------------------------------------------------

// writeOutputFile creates or truncates the file at fpath and writes content.
func writeOutputFile(fpath, content string) error {
	file, err := os.OpenFile(fpath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open output file `%s`: %w", fpath, err)
	}
	defer file.Close()

	if _, err := file.WriteString(content); err != nil {
		return fmt.Errorf("failed to write output to file `%s`: %w", fpath, err)
	}

	return nil
}
