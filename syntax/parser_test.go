package syntax

import (
	"errors"
	"testing"

	"github.com/kr/pretty"

	"pl0c/ir"
	"pl0c/report"
	"pl0c/sem"
)

// compileSrc scans and compiles src with the default options.
func compileSrc(t *testing.T, src string) (*Result, error) {
	t.Helper()
	return Compile(scan(t, src), DefaultOptions())
}

// mustCompile compiles src and fails the test if compilation fails.
func mustCompile(t *testing.T, src string) *Result {
	t.Helper()

	res, err := compileSrc(t, src)
	if err != nil {
		t.Fatalf("unexpected error compiling %q: %s", src, err)
	}

	return res
}

// checkCode compares generated code against the expected instructions.
func checkCode(t *testing.T, want, got []ir.Instruction) {
	t.Helper()

	if diff := pretty.Diff(want, got); len(diff) > 0 {
		t.Errorf("generated code mismatch:\n%s", pretty.Sprint(diff))
	}
}

// asCompileError extracts the compile error from err.
func asCompileError(t *testing.T, err error) *report.CompileError {
	t.Helper()

	var cerr *report.CompileError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected a compile error, got %v", err)
	}

	return cerr
}

func TestConstantFolding(t *testing.T) {
	res := mustCompile(t, "const a = 3; var b; begin b := a + 1; write b end.")

	checkCode(t, []ir.Instruction{
		{Op: ir.INC, M: 4},
		{Op: ir.LIT, M: 3},
		{Op: ir.LIT, M: 1},
		{Op: ir.OPR, M: ir.OPR_ADD},
		{Op: ir.STO, M: 3},
		{Op: ir.LOD, M: 3},
		{Op: ir.SYS, M: ir.SYS_WRITE},
		{Op: ir.SYS, M: ir.SYS_HALT},
	}, res.Code)

	want := []*sem.Symbol{
		{Kind: sem.SymConst, Name: "a", Value: 3, Retired: true},
		{Kind: sem.SymVar, Name: "b", Addr: 3, Retired: true},
	}
	if diff := pretty.Diff(want, res.Symbols); len(diff) > 0 {
		t.Errorf("symbol table mismatch:\n%s", pretty.Sprint(diff))
	}
}

func TestIfBackpatch(t *testing.T) {
	res := mustCompile(t, "var x; if x = 0 then x := 1 fi.")

	checkCode(t, []ir.Instruction{
		{Op: ir.INC, M: 4},
		{Op: ir.LOD, M: 3},
		{Op: ir.LIT, M: 0},
		{Op: ir.OPR, M: ir.OPR_EQL},
		{Op: ir.JPC, M: 7},
		{Op: ir.LIT, M: 1},
		{Op: ir.STO, M: 3},
		{Op: ir.SYS, M: ir.SYS_HALT},
	}, res.Code)
}

func TestWhileBackpatch(t *testing.T) {
	res := mustCompile(t, "var x; while even x do x := x - 1.")

	checkCode(t, []ir.Instruction{
		{Op: ir.INC, M: 4},
		{Op: ir.LOD, M: 3},
		{Op: ir.OPR, M: ir.OPR_EVEN},
		{Op: ir.JPC, M: 9},
		{Op: ir.LOD, M: 3},
		{Op: ir.LIT, M: 1},
		{Op: ir.OPR, M: ir.OPR_SUB},
		{Op: ir.STO, M: 3},
		{Op: ir.JMP, M: 1},
		{Op: ir.SYS, M: ir.SYS_HALT},
	}, res.Code)
}

func TestNestedControlFlow(t *testing.T) {
	res := mustCompile(t, `
		var i, s;
		begin
			read i;
			while i > 0 do
				begin
					if i <> 3 then s := s + i fi;
					i := i - 1
				end;
			write s
		end.`)

	checkCode(t, []ir.Instruction{
		{Op: ir.INC, M: 5},
		{Op: ir.SYS, M: ir.SYS_READ},
		{Op: ir.STO, M: 3},
		{Op: ir.LOD, M: 3}, // 3: loop condition
		{Op: ir.LIT, M: 0},
		{Op: ir.OPR, M: ir.OPR_GTR},
		{Op: ir.JPC, M: 20},
		{Op: ir.LOD, M: 3},
		{Op: ir.LIT, M: 3},
		{Op: ir.OPR, M: ir.OPR_NEQ},
		{Op: ir.JPC, M: 15},
		{Op: ir.LOD, M: 4},
		{Op: ir.LOD, M: 3},
		{Op: ir.OPR, M: ir.OPR_ADD},
		{Op: ir.STO, M: 4},
		{Op: ir.LOD, M: 3}, // 15: after the if
		{Op: ir.LIT, M: 1},
		{Op: ir.OPR, M: ir.OPR_SUB},
		{Op: ir.STO, M: 3},
		{Op: ir.JMP, M: 3},
		{Op: ir.LOD, M: 4}, // 20: after the loop
		{Op: ir.SYS, M: ir.SYS_WRITE},
		{Op: ir.SYS, M: ir.SYS_HALT},
	}, res.Code)

	var jpcs, jmps []int
	for i, instr := range res.Code {
		switch instr.Op {
		case ir.JPC:
			jpcs = append(jpcs, i)
		case ir.JMP:
			jmps = append(jmps, i)
		}
	}

	if len(jpcs) != 2 || len(jmps) != 1 {
		t.Fatalf("expected 2 conditional jumps and 1 jump, got %v and %v", jpcs, jmps)
	}

	// the loop exits to the instruction after its backward jump
	if res.Code[jpcs[0]].M != jmps[0]+1 {
		t.Errorf("loop exit: expected target %d, got %d", jmps[0]+1, res.Code[jpcs[0]].M)
	}

	// the backward jump targets the first instruction of the condition
	if res.Code[jmps[0]].M != 3 {
		t.Errorf("loop back: expected target 3, got %d", res.Code[jmps[0]].M)
	}

	// the if skips exactly its assignment (LOD, LOD, OPR, STO)
	if res.Code[jpcs[1]].M != jpcs[1]+5 {
		t.Errorf("if exit: expected target %d, got %d", jpcs[1]+5, res.Code[jpcs[1]].M)
	}
}

func TestExpressions(t *testing.T) {
	testCases := []struct {
		name string
		src  string
		want []ir.Instruction
	}{
		{
			name: "UnaryMinus",
			src:  "var x; x := -x.",
			want: []ir.Instruction{
				{Op: ir.INC, M: 4},
				{Op: ir.LIT, M: 0},
				{Op: ir.LOD, M: 3},
				{Op: ir.OPR, M: ir.OPR_SUB},
				{Op: ir.STO, M: 3},
				{Op: ir.SYS, M: ir.SYS_HALT},
			},
		},
		{
			name: "UnaryPlus",
			src:  "var x; x := +7.",
			want: []ir.Instruction{
				{Op: ir.INC, M: 4},
				{Op: ir.LIT, M: 7},
				{Op: ir.STO, M: 3},
				{Op: ir.SYS, M: ir.SYS_HALT},
			},
		},
		{
			name: "Precedence",
			src:  "var x; x := 1 + 2 * 3 - 4 / 2.",
			want: []ir.Instruction{
				{Op: ir.INC, M: 4},
				{Op: ir.LIT, M: 1},
				{Op: ir.LIT, M: 2},
				{Op: ir.LIT, M: 3},
				{Op: ir.OPR, M: ir.OPR_MUL},
				{Op: ir.OPR, M: ir.OPR_ADD},
				{Op: ir.LIT, M: 4},
				{Op: ir.LIT, M: 2},
				{Op: ir.OPR, M: ir.OPR_DIV},
				{Op: ir.OPR, M: ir.OPR_SUB},
				{Op: ir.STO, M: 3},
				{Op: ir.SYS, M: ir.SYS_HALT},
			},
		},
		{
			name: "Parentheses",
			src:  "var x; x := (1 + 2) * x.",
			want: []ir.Instruction{
				{Op: ir.INC, M: 4},
				{Op: ir.LIT, M: 1},
				{Op: ir.LIT, M: 2},
				{Op: ir.OPR, M: ir.OPR_ADD},
				{Op: ir.LOD, M: 3},
				{Op: ir.OPR, M: ir.OPR_MUL},
				{Op: ir.STO, M: 3},
				{Op: ir.SYS, M: ir.SYS_HALT},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			checkCode(t, tc.want, mustCompile(t, tc.src).Code)
		})
	}
}

func TestRelationalOperators(t *testing.T) {
	ops := map[string]int{
		"=":  ir.OPR_EQL,
		"<>": ir.OPR_NEQ,
		"<":  ir.OPR_LSS,
		"<=": ir.OPR_LEQ,
		">":  ir.OPR_GTR,
		">=": ir.OPR_GEQ,
	}

	for op, oprMod := range ops {
		res := mustCompile(t, "var x; if x "+op+" 1 then fi.")

		// INC, LOD, LIT, OPR, JPC, SYS
		if got := res.Code[3]; got.Op != ir.OPR || got.M != oprMod {
			t.Errorf("%s: expected OPR %d, got %s %d", op, oprMod, got.Op, got.M)
		}
	}
}

func TestEmptyStatements(t *testing.T) {
	res := mustCompile(t, "begin ; ; end.")

	checkCode(t, []ir.Instruction{
		{Op: ir.INC, M: 3},
		{Op: ir.SYS, M: ir.SYS_HALT},
	}, res.Code)
}

func TestEntryJump(t *testing.T) {
	opts := DefaultOptions()
	opts.EntryJump = true

	res, err := Compile(scan(t, "var x; write x."), opts)
	if err != nil {
		t.Fatal(err)
	}

	checkCode(t, []ir.Instruction{
		{Op: ir.JMP, M: 1},
		{Op: ir.INC, M: 4},
		{Op: ir.LOD, M: 3},
		{Op: ir.SYS, M: ir.SYS_WRITE},
		{Op: ir.SYS, M: ir.SYS_HALT},
	}, res.Code)
}

func TestStoreAccounting(t *testing.T) {
	res := mustCompile(t, `
		const k = 10;
		var a, b, c;
		begin
			read a;
			b := a * k;
			while b > 0 do begin c := c + b; b := b - 1 end;
			read b;
			write c
		end.`)

	stores := map[int]int{}
	for _, instr := range res.Code {
		if instr.Op == ir.LOD || instr.Op == ir.STO {
			if instr.M < ir.DataStart || instr.M >= ir.DataStart+3 {
				t.Errorf("%s references address %d outside the data area", instr.Op, instr.M)
			}
		}

		if instr.Op == ir.STO {
			stores[instr.M]++
		}
	}

	want := map[int]int{3: 1, 4: 3, 5: 1}
	if diff := pretty.Diff(want, stores); len(diff) > 0 {
		t.Errorf("store counts mismatch:\n%s", pretty.Sprint(diff))
	}
}

func TestSymbolsRetired(t *testing.T) {
	res := mustCompile(t, "const a = 1, b = 2; var c, d; c := a.")

	if len(res.Symbols) != 4 {
		t.Fatalf("expected 4 symbols, got %d", len(res.Symbols))
	}

	for _, sym := range res.Symbols {
		if !sym.Retired {
			t.Errorf("symbol %s is still active after the program ended", sym.Name)
		}
	}

	if res.Symbols[2].Addr != 3 || res.Symbols[3].Addr != 4 {
		t.Errorf("expected variables at 3 and 4, got %d and %d", res.Symbols[2].Addr, res.Symbols[3].Addr)
	}
}

func TestNameTruncation(t *testing.T) {
	_, err := compileSrc(t, "var abcdefghijkXX, abcdefghijkYY; .")
	if cerr := asCompileError(t, err); cerr.Message != MsgAlreadyDeclared {
		t.Errorf("expected names sharing 11 characters to collide, got %q", cerr.Message)
	}

	res := mustCompile(t, "var abcdefghijkXX; abcdefghijkYY := 1.")
	if res.Symbols[0].Name != "abcdefghijk" {
		t.Errorf("expected truncated name, got %q", res.Symbols[0].Name)
	}
}
