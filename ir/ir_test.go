package ir

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"pl0c/report"
	"pl0c/sem"
)

func TestEmitter(t *testing.T) {
	em := NewEmitter(3)

	if em.CurrentIndex() != 0 {
		t.Fatalf("expected an empty emitter, got index %d", em.CurrentIndex())
	}

	jpc, _ := em.Emit(JPC, 0, 0)
	em.Emit(LIT, 0, 5)

	if jpc != 0 || em.CurrentIndex() != 2 {
		t.Fatalf("unexpected addresses: jpc at %d, next at %d", jpc, em.CurrentIndex())
	}

	em.Patch(jpc, em.CurrentIndex())
	if em.Code()[0].M != 2 {
		t.Errorf("expected the jump to be patched to 2, got %d", em.Code()[0].M)
	}

	if em.Code()[1] != (Instruction{Op: LIT, M: 5}) {
		t.Errorf("patching must only touch the patched instruction, got %+v", em.Code()[1])
	}

	em.Emit(SYS, 0, SYS_HALT)
	_, err := em.Emit(SYS, 0, SYS_HALT)

	var cerr *report.CompileError
	if !errors.As(err, &cerr) || !cerr.IsInternal() || cerr.Message != MsgCodeOverflow {
		t.Errorf("expected a code overflow, got %v", err)
	}

	if len(em.Code()) != 3 {
		t.Errorf("expected 3 instructions after the overflow, got %d", len(em.Code()))
	}
}

func TestMnemonics(t *testing.T) {
	for op, name := range opNames {
		if op.Mnemonic() != name {
			t.Errorf("expected %s, got %s", name, op.Mnemonic())
		}
	}

	if Opcode(42).Mnemonic() != "UNK" {
		t.Errorf("expected unknown opcodes to be UNK, got %s", Opcode(42).Mnemonic())
	}
}

var (
	testCode = []Instruction{
		{Op: INC, M: 4},
		{Op: LIT, M: 3},
		{Op: STO, M: 3},
		{Op: SYS, M: SYS_HALT},
	}

	testSyms = []*sem.Symbol{
		{Kind: sem.SymConst, Name: "a", Value: 3, Retired: true},
		{Kind: sem.SymVar, Name: "b", Addr: 3, Retired: true},
	}
)

func TestWriteObject(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteObject(&buf, testCode); err != nil {
		t.Fatal(err)
	}

	want := "6 0 4\n1 0 3\n4 0 3\n9 0 3\n"
	if buf.String() != want {
		t.Errorf("expected object code %q, got %q", want, buf.String())
	}
}

func TestWriteListing(t *testing.T) {
	t.Run("Plain", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteListing(&buf, ListingPlain, testCode, testSyms); err != nil {
			t.Fatal(err)
		}

		want := "Assembly Code:\n\nLine OP L M\n\n" +
			"0 INC 0 4\n\n" +
			"1 LIT 0 3\n\n" +
			"2 STO 0 3\n\n" +
			"3 SYS 0 3\n\n" +
			"Symbol Table:\n\nKind | Name | Value | Level | Address | Mark\n\n" +
			"---------------------------------------------------\n\n" +
			"1 | a | 3 | 0 | 0 | 1\n\n" +
			"2 | b | 0 | 0 | 3 | 1\n\n"

		if buf.String() != want {
			t.Errorf("listing mismatch:\nexpected:\n%s\ngot:\n%s", want, buf.String())
		}
	})

	t.Run("Table", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteListing(&buf, ListingTable, testCode, testSyms); err != nil {
			t.Fatal(err)
		}

		for _, want := range []string{"Assembly Code:", "Symbol Table:", "INC", "SYS", "const", "var"} {
			if !strings.Contains(buf.String(), want) {
				t.Errorf("expected the table listing to contain %q", want)
			}
		}
	})

	t.Run("None", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteListing(&buf, ListingNone, testCode, testSyms); err != nil {
			t.Fatal(err)
		}

		if buf.Len() != 0 {
			t.Errorf("expected no listing, got %q", buf.String())
		}
	})
}
