package profile

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/pelletier/go-toml"

	"pl0c/common"
	"pl0c/ir"
	"pl0c/report"
)

// Enumeration of output formats.
const (
	FormatObj  = "obj"
	FormatLLVM = "llvm"
)

// BuildProfile is the resolved configuration of one compilation.
type BuildProfile struct {
	Name string

	// InputPath is the path to the token file.
	InputPath string

	// OutputPath is the path to the object file.
	OutputPath string

	// Format is the output format: one of the enumerated formats.
	Format string

	// Listing is the listing style written to standard output.
	Listing string

	// EntryJump indicates whether a jump to the program block is emitted
	// ahead of all other code.
	EntryJump bool

	// MaxSymbols and MaxCode are the capacities of the symbol table and the
	// code buffer.
	MaxSymbols, MaxCode int

	// Color indicates whether console output is coloured.
	Color bool
}

// Default returns the profile used when no profile file exists.
func Default() *BuildProfile {
	return &BuildProfile{
		Name:       "default",
		InputPath:  common.DefaultTokenFile,
		OutputPath: common.DefaultObjectFile,
		Format:     FormatObj,
		Listing:    ir.ListingPlain,
		MaxSymbols: common.DefaultMaxSymbols,
		MaxCode:    common.DefaultMaxCode,
		Color:      true,
	}
}

// -----------------------------------------------------------------------------

// tomlProfileFile represents the profile file as it is encoded in TOML.
type tomlProfileFile struct {
	Profiles []*tomlProfile `toml:"profiles"`
}

// tomlProfile represents a profile as it is encoded in TOML.  Pointer fields
// distinguish values that were left out from zero values.
type tomlProfile struct {
	Name        string `toml:"name"`
	DefaultProf bool   `toml:"default"`
	Input       string `toml:"input,omitempty"`
	Output      string `toml:"output,omitempty"`
	Format      string `toml:"format,omitempty"`
	Listing     string `toml:"listing,omitempty"`
	EntryJump   *bool  `toml:"entry-jump,omitempty"`
	MaxSymbols  *int   `toml:"max-symbols,omitempty"`
	MaxCode     *int   `toml:"max-code,omitempty"`
	Color       *bool  `toml:"color,omitempty"`
}

// Load reads the profile file at path and selects a profile from it.  If the
// file does not exist, the default profile is returned.  selected may be empty
// if no profile was requested by name.
func Load(path, selected string) (*BuildProfile, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if selected != "" {
				return nil, fmt.Errorf("no profile file found to select profile `%s` from", selected)
			}

			return Default(), nil
		}

		return nil, err
	}
	defer f.Close()

	return Parse(f, selected)
}

// Parse decodes a profile file and selects a profile from it: the profile
// named selected if it is not empty, otherwise the profile marked as default,
// otherwise the first profile.
func Parse(r io.Reader, selected string) (*BuildProfile, error) {
	buff, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	tpf := &tomlProfileFile{}
	if err := toml.Unmarshal(buff, tpf); err != nil {
		return nil, fmt.Errorf("error parsing profile file: %w", err)
	}

	if len(tpf.Profiles) == 0 {
		if selected != "" {
			return nil, fmt.Errorf("no profile named `%s`", selected)
		}

		return Default(), nil
	}

	tp, err := selectProfile(tpf.Profiles, selected)
	if err != nil {
		return nil, err
	}

	prof := mergeProfile(tp)
	if err := prof.Validate(); err != nil {
		return nil, fmt.Errorf("profile `%s`: %w", prof.Name, err)
	}

	return prof, nil
}

// selectProfile picks a profile out of the decoded profiles.
func selectProfile(profiles []*tomlProfile, selected string) (*tomlProfile, error) {
	if selected != "" {
		for _, tp := range profiles {
			if tp.Name == selected {
				return tp, nil
			}
		}

		return nil, fmt.Errorf("no profile named `%s`", selected)
	}

	var def *tomlProfile
	for _, tp := range profiles {
		if !tp.DefaultProf {
			continue
		}

		if def == nil {
			def = tp
		} else {
			report.ReportWarning("profile `%s` is also marked default; using `%s`", tp.Name, def.Name)
		}
	}

	if def != nil {
		return def, nil
	}

	return profiles[0], nil
}

// mergeProfile applies the values set in a decoded profile over the defaults.
func mergeProfile(tp *tomlProfile) *BuildProfile {
	prof := Default()

	if tp.Name != "" {
		prof.Name = tp.Name
	}

	if tp.Input != "" {
		prof.InputPath = tp.Input
	}

	if tp.Output != "" {
		prof.OutputPath = tp.Output
	}

	if tp.Format != "" {
		prof.Format = tp.Format
	}

	if tp.Listing != "" {
		prof.Listing = tp.Listing
	}

	if tp.EntryJump != nil {
		prof.EntryJump = *tp.EntryJump
	}

	if tp.MaxSymbols != nil {
		prof.MaxSymbols = *tp.MaxSymbols
	}

	if tp.MaxCode != nil {
		prof.MaxCode = *tp.MaxCode
	}

	if tp.Color != nil {
		prof.Color = *tp.Color
	}

	return prof
}

// Validate checks that the profile's values are usable.
func (bp *BuildProfile) Validate() error {
	switch bp.Format {
	case FormatObj, FormatLLVM:
	default:
		return fmt.Errorf("invalid output format `%s`", bp.Format)
	}

	switch bp.Listing {
	case ir.ListingNone, ir.ListingPlain, ir.ListingTable:
	default:
		return fmt.Errorf("invalid listing style `%s`", bp.Listing)
	}

	if bp.MaxSymbols <= 0 {
		return errors.New("max-symbols must be positive")
	}

	if bp.MaxCode <= 0 {
		return errors.New("max-code must be positive")
	}

	return nil
}

// -----------------------------------------------------------------------------

// WriteDefault writes a profile file containing the default profile.
func WriteDefault(w io.Writer) error {
	def := Default()
	entryJump, color := def.EntryJump, def.Color
	maxSymbols, maxCode := def.MaxSymbols, def.MaxCode

	return toml.NewEncoder(w).Encode(&tomlProfileFile{
		Profiles: []*tomlProfile{{
			Name:        def.Name,
			DefaultProf: true,
			Input:       def.InputPath,
			Output:      def.OutputPath,
			Format:      def.Format,
			Listing:     def.Listing,
			EntryJump:   &entryJump,
			MaxSymbols:  &maxSymbols,
			MaxCode:     &maxCode,
			Color:       &color,
		}},
	})
}
