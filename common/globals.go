package common

// PL0CVersion is the current compiler version as a string.
const PL0CVersion string = "0.1.0"

// ProfileFileName is the name of the optional build profile file.
const ProfileFileName string = "pl0c.toml"

// DefaultTokenFile is the token file read when no input is specified.
const DefaultTokenFile string = "tokens.txt"

// DefaultObjectFile is the object file written when no output is specified.
const DefaultObjectFile string = "elf.txt"

// MaxNameLength is the number of significant characters in an identifier.
const MaxNameLength int = 11

// Default capacities of the symbol table and the code buffer.
const (
	DefaultMaxSymbols = 500
	DefaultMaxCode    = 500
)
