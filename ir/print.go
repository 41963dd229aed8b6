package ir

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"pl0c/sem"
)

// Enumeration of listing styles.
const (
	ListingNone  = "none"
	ListingPlain = "plain"
	ListingTable = "table"
)

// WriteListing writes the human-readable listing of a compiled program: the
// instructions followed by the symbol table.
func WriteListing(w io.Writer, style string, code []Instruction, syms []*sem.Symbol) error {
	switch style {
	case ListingNone:
		return nil
	case ListingTable:
		return writeTableListing(w, code, syms)
	default:
		return writePlainListing(w, code, syms)
	}
}

// writePlainListing writes the line-oriented listing.
func writePlainListing(w io.Writer, code []Instruction, syms []*sem.Symbol) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, "Assembly Code:\n\nLine OP L M\n\n")
	for i, instr := range code {
		fmt.Fprintf(bw, "%d %s %d %d\n\n", i, instr.Op.Mnemonic(), instr.L, instr.M)
	}

	fmt.Fprint(bw, "Symbol Table:\n\nKind | Name | Value | Level | Address | Mark\n\n")
	fmt.Fprint(bw, "---------------------------------------------------\n\n")
	for _, sym := range syms {
		fmt.Fprintf(bw, "%d | %s | %d | %d | %d | %d\n\n", sym.Kind, sym.Name, sym.Value, sym.Level, sym.Addr, sym.Mark())
	}

	return bw.Flush()
}

// writeTableListing renders the listing as two pterm tables.
func writeTableListing(w io.Writer, code []Instruction, syms []*sem.Symbol) error {
	codeData := pterm.TableData{{"Line", "OP", "L", "M"}}
	for i, instr := range code {
		codeData = append(codeData, []string{
			strconv.Itoa(i),
			instr.Op.Mnemonic(),
			strconv.Itoa(instr.L),
			strconv.Itoa(instr.M),
		})
	}

	symData := pterm.TableData{{"Kind", "Name", "Value", "Level", "Address", "Mark"}}
	for _, sym := range syms {
		symData = append(symData, []string{
			sym.KindName(),
			sym.Name,
			strconv.Itoa(sym.Value),
			strconv.Itoa(sym.Level),
			strconv.Itoa(sym.Addr),
			strconv.Itoa(sym.Mark()),
		})
	}

	codeTable, err := pterm.DefaultTable.WithHasHeader().WithData(codeData).Srender()
	if err != nil {
		return err
	}

	symTable, err := pterm.DefaultTable.WithHasHeader().WithData(symData).Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "Assembly Code:\n\n%s\n\nSymbol Table:\n\n%s\n", codeTable, symTable)
	return err
}

// WriteObject writes the object form of a program: one line per instruction
// holding the numeric opcode and its two operands.
func WriteObject(w io.Writer, code []Instruction) error {
	bw := bufio.NewWriter(w)

	for _, instr := range code {
		fmt.Fprintf(bw, "%d %d %d\n", int(instr.Op), instr.L, instr.M)
	}

	return bw.Flush()
}
