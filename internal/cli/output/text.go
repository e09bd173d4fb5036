package output

import (
	"fmt"
	"io"

	"github.com/yndnr/kappa-go/internal/core/domain"
)

// TextFormatter renders drops as labelled lines, one field per line, with a
// blank line after each record.
type TextFormatter struct{}

// Format renders a drop, a list of drops or a plain message.
func (f *TextFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case nil:
		return nil
	case domain.Drop:
		return writeDrop(w, v)
	case *domain.Drop:
		if v == nil {
			return nil
		}
		return writeDrop(w, *v)
	case []domain.Drop:
		for _, d := range v {
			if err := writeDrop(w, d); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := fmt.Fprintf(w, "%v\n\n", v)
		return err
	}
}

func writeDrop(w io.Writer, d domain.Drop) error {
	_, err := fmt.Fprintf(w,
		"Name: %s\nParameter: %s\nSecret token: %s\nType: %s\nStock: %d\nPurchased: %d\n\n",
		d.Name, d.Param, d.Secret, d.Type, d.Stock, d.Purchased)
	return err
}
