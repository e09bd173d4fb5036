package output

import (
	"encoding/json"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/yndnr/kappa-go/internal/core/domain"
)

// dropHeaders are the table columns for drops.
var dropHeaders = []string{"NAME", "PARAM", "SECRET", "TYPE", "STOCK", "PURCHASED"}

// TableFormatter formats data as an aligned table.
type TableFormatter struct {
	NoHeaders bool
}

// Format formats drops as a table. Tables render directly; anything else
// falls back to JSON.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	var table *Table

	switch v := data.(type) {
	case nil:
		return nil
	case *Table:
		table = v
	case Table:
		table = &v
	case domain.Drop:
		table = dropsToTable([]domain.Drop{v})
	case *domain.Drop:
		if v == nil {
			return nil
		}
		table = dropsToTable([]domain.Drop{*v})
	case []domain.Drop:
		table = dropsToTable(v)
	default:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	}

	if err := table.RenderWithOptions(w, f.NoHeaders); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func dropsToTable(drops []domain.Drop) *Table {
	table := &Table{Headers: dropHeaders}
	for _, d := range drops {
		table.AddRow(
			d.Name,
			d.Param,
			d.Secret,
			string(d.Type),
			strconv.FormatInt(int64(d.Stock), 10),
			strconv.FormatInt(int64(d.Purchased), 10),
		)
	}
	return table
}

// Table represents tabular data.
type Table struct {
	Headers []string
	Rows    [][]string
}

// RenderWithOptions renders the table with options.
func (t *Table) RenderWithOptions(w io.Writer, noHeaders bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if !noHeaders && len(t.Headers) > 0 {
		writeRow(tw, t.Headers)
	}
	for _, row := range t.Rows {
		writeRow(tw, row)
	}

	return tw.Flush()
}

func writeRow(w io.Writer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			io.WriteString(w, "\t")
		}
		io.WriteString(w, cell)
	}
	io.WriteString(w, "\n")
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}
