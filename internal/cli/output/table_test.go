package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yndnr/kappa-go/internal/core/domain"
)

func TestTableFormatter_Drops(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}

	drops := []domain.Drop{
		sampleDrop(),
		{Name: "hoodie", Param: "color", Secret: "s", Type: domain.DropTypePaidLifetime, Stock: 5, Purchased: 1},
	}
	if err := f.Format(&buf, drops); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3:\n%s", len(lines), buf.String())
	}
	if fields := strings.Fields(lines[0]); strings.Join(fields, ",") != "NAME,PARAM,SECRET,TYPE,STOCK,PURCHASED" {
		t.Errorf("header = %q", lines[0])
	}
	if fields := strings.Fields(lines[1]); strings.Join(fields, ",") != "sneakers,size,abc123,initial-lifetime,50,3" {
		t.Errorf("row = %q", lines[1])
	}
	// Columns are aligned.
	if strings.Index(lines[0], "PARAM") != strings.Index(lines[1], "size") {
		t.Errorf("columns not aligned:\n%s", buf.String())
	}
	if !strings.HasSuffix(buf.String(), "\n\n") {
		t.Error("table should end with a blank line")
	}
}

func TestTableFormatter_SingleDrop(t *testing.T) {
	var buf bytes.Buffer
	drop := sampleDrop()
	if err := (&TableFormatter{NoHeaders: true}).Format(&buf, &drop); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if strings.Contains(buf.String(), "NAME") {
		t.Error("NoHeaders should suppress the header row")
	}
	if !strings.HasPrefix(buf.String(), "sneakers") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestTableFormatter_FallbackToJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, domain.OperationResult{Success: true}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"success": true`) {
		t.Errorf("output = %q", buf.String())
	}
}

func TestTable_Render(t *testing.T) {
	table := &Table{Headers: []string{"KEY", "VALUE"}}
	table.AddRow("a", "1")
	table.AddRow("longer", "2")

	var buf bytes.Buffer
	if err := table.RenderWithOptions(&buf, false); err != nil {
		t.Fatalf("RenderWithOptions() error = %v", err)
	}

	want := "KEY     VALUE\na       1\nlonger  2\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestTable_RenderNoRows(t *testing.T) {
	var buf bytes.Buffer
	if err := (&Table{}).RenderWithOptions(&buf, false); err != nil {
		t.Fatalf("RenderWithOptions() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output = %q, want empty", buf.String())
	}
}
