package catalog

import (
	"bytes"
	"strings"
	"testing"
)

func TestCheckArityPassFailNoSuch(t *testing.T) {
	if res, _, _ := CheckArity("sqrt", 1); res != Pass {
		t.Fatalf("sqrt/1 = %v, want Pass", res)
	}
	if res, expected, _ := CheckArity("sqrt", 0); res != Fail || expected != 1 {
		t.Fatalf("sqrt/0 = %v,%d want Fail,1", res, expected)
	}
	if res, _, _ := CheckArity("no_such_function", 1); res != NoSuch {
		t.Fatalf("no_such_function = %v, want NoSuch", res)
	}
}

func TestCheckArityMinusBothArities(t *testing.T) {
	if res, _, _ := CheckArity("-", 1); res != Pass {
		t.Fatalf("-/1 = %v, want Pass", res)
	}
	if res, _, _ := CheckArity("-", 2); res != Pass {
		t.Fatalf("-/2 = %v, want Pass", res)
	}
	if res, _, _ := CheckArity("-", 3); res != Fail {
		t.Fatalf("-/3 = %v, want Fail", res)
	}
}

func TestCheckArityVariadicAlwaysPasses(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		if res, _, variadic := CheckArity("min", n); res != Pass || !variadic {
			t.Fatalf("min/%d = %v,variadic=%v want Pass,true", n, res, variadic)
		}
	}
}

func TestNamesNoDuplicates(t *testing.T) {
	names := Names()
	seen := map[string]bool{}
	for _, n := range names {
		if seen[n] {
			t.Fatalf("duplicate name in Names(): %s", n)
		}
		seen[n] = true
	}
	if !seen["sqrt"] || !seen["-"] || !seen["min"] {
		t.Fatalf("Names() missing expected entries: %v", names)
	}
}

func TestListWraps80Columns(t *testing.T) {
	var buf bytes.Buffer
	List(&buf, "mlr: ", Names())
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		if len(line) > 80 {
			t.Fatalf("line exceeds 80 columns: %q (%d)", line, len(line))
		}
		if !strings.HasPrefix(line, "mlr: ") {
			t.Fatalf("line missing leader: %q", line)
		}
	}
}

func TestUsageAllAppendsNote(t *testing.T) {
	var buf bytes.Buffer
	Usage(&buf, "")
	out := buf.String()
	if !strings.Contains(out, "--seed") {
		t.Fatalf("Usage(all) missing --seed note: %s", out)
	}
	if !strings.Contains(out, "NF, NR, FNR, FILENUM, FILENAME") {
		t.Fatalf("Usage(all) missing built-in variable note")
	}
}

func TestUsageSingleUnknown(t *testing.T) {
	var buf bytes.Buffer
	Usage(&buf, "not_a_function")
	if !strings.Contains(buf.String(), "no such function") {
		t.Fatalf("Usage(unknown) = %q", buf.String())
	}
}
