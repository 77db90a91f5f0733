package common

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDedupColumnNames(t *testing.T) {
	tests := []struct {
		name     string
		raw      []string
		expected []string
	}{
		{"Unique", []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"RepeatFirst", []string{"x", "x", "y"}, []string{"x", "col1", "y"}},
		{"CounterAdvances", []string{"a", "a", "b", "b", "a"}, []string{"a", "col1", "b", "col2", "col3"}},
		// A header equal to a generated name is renamed again.
		{"GeneratedCollidesLater", []string{"x", "x", "col1"}, []string{"x", "col1", "col2"}},
		// A generated name equal to an earlier header is not re-checked.
		{"GeneratedCollidesEarlier", []string{"col1", "x", "x"}, []string{"col1", "x", "col1"}},
		{"BlankHeaders", []string{"", "", "a"}, []string{"", "col1", "a"}},
		{"CaseSensitive", []string{"A", "a"}, []string{"A", "a"}},
		{"Empty", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DedupColumnNames(tt.raw, PlaceholderPrefix)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("DedupColumnNames(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", `"plain"`},
		{"with space", `"with space"`},
		{`say "hi"`, `"say ""hi"""`},
		{"[bracket]", `"[bracket]"`},
		{"", `""`},
	}
	for _, tt := range tests {
		if got := QuoteIdentifier(tt.in); got != tt.want {
			t.Errorf("QuoteIdentifier(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestGenCreateTableSQL(t *testing.T) {
	got := GenCreateTableSQL("Sheet 1", []string{"a", "col1"}, RowNumberColumn)
	want := `CREATE TABLE IF NOT EXISTS "Sheet 1" ("a" TEXT, "col1" TEXT, "row_number" INTEGER)`
	if got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}

	got = GenCreateTableSQL("t", nil, "n")
	want = `CREATE TABLE IF NOT EXISTS "t" ("n" INTEGER)`
	if got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
}

func TestGenPreparedStmt(t *testing.T) {
	insert, err := GenPreparedStmt("t", []string{"a", "b", RowNumberColumn}, InsertStmt)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	want := "INSERT INTO \"t\" (\n\t\"a\", \"b\", \"row_number\"\n) VALUES (?, ?, ?)"
	if insert != want {
		t.Errorf("got %q\nwant %q", insert, want)
	}

	sel, err := GenPreparedStmt("t", []string{"a", "b"}, SelectStmt)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if sel != "SELECT +\"a\" AS \"a\", +\"b\" AS \"b\"\nFROM \"t\"" {
		t.Errorf("unexpected select: %q", sel)
	}

	if _, err := GenPreparedStmt("", []string{"a"}, InsertStmt); err == nil {
		t.Error("expected error for empty table name")
	}
	if _, err := GenPreparedStmt("t", nil, InsertStmt); err == nil {
		t.Error("expected error for empty field list")
	}
	if _, err := GenPreparedStmt("t", []string{"a"}, SQLStmtType("DROP")); err == nil {
		t.Error("expected error for unsupported statement type")
	}
}
