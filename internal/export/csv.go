// Package export projects the transaction list to a flat CSV file and
// reads that projection back. The projection is one-way and read-only:
// it is never part of the persisted state.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zunaidhosse/fare/internal/model"
)

// Header is the fixed column set of the projection.
const Header = "ID,Type,Amount,Category,Date,Notes"

// WriteCSV writes the transaction list as CSV. The category is rendered
// by display name and the notes field is always quoted.
func WriteCSV(w io.Writer, txns []model.Transaction) error {
	if _, err := fmt.Fprintln(w, Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, t := range txns {
		_, err := fmt.Fprintf(w, "%s,%s,%s,%s,%s,%s\n",
			t.ID,
			t.Type,
			t.Amount,
			t.Category.Name,
			t.Date.Format(time.RFC3339),
			quoteNotes(t.Notes),
		)
		if err != nil {
			return fmt.Errorf("failed to write transaction %s: %w", t.ID, err)
		}
	}
	return nil
}

// quoteNotes quotes the notes column CSV-style, doubling embedded
// quote marks, so ReadCSV can parse the file back verbatim.
func quoteNotes(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Row is one parsed line of the projection. The ID is the exported one;
// re-ingesting assigns fresh ids, so it is informational only.
type Row struct {
	Date     time.Time
	ID       string
	Notes    string
	Type     model.TransactionType
	Category model.Category
	Amount   decimal.Decimal
}

// ReadCSV parses a previously exported projection. Category snapshots
// are resolved by display name against the supplied category list; an
// unmatched name keeps the name with a slug id so no history is lost.
func ReadCSV(r io.Reader, categories []model.Category) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 6

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty file: missing %q header", Header)
	}
	if strings.Join(records[0], ",") != Header {
		return nil, fmt.Errorf("unexpected header %q", strings.Join(records[0], ","))
	}

	rows := make([]Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		row, err := parseRow(rec, categories)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRow(rec []string, categories []model.Category) (Row, error) {
	txnType := model.TransactionType(rec[1])
	if txnType != model.TransactionIncome && txnType != model.TransactionExpense {
		return Row{}, fmt.Errorf("unknown transaction type %q", rec[1])
	}

	amount, err := decimal.NewFromString(rec[2])
	if err != nil {
		return Row{}, fmt.Errorf("bad amount %q: %w", rec[2], err)
	}

	date, err := parseDate(rec[4])
	if err != nil {
		return Row{}, err
	}

	return Row{
		ID:       rec[0],
		Type:     txnType,
		Amount:   amount,
		Category: resolveCategory(rec[3], categories),
		Date:     date,
		Notes:    rec[5],
	}, nil
}

func parseDate(s string) (time.Time, error) {
	if d, err := time.Parse(time.RFC3339, s); err == nil {
		return d, nil
	}
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d, nil
	}
	return time.Time{}, fmt.Errorf("bad date %q", s)
}

func resolveCategory(name string, categories []model.Category) model.Category {
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	return model.Category{ID: model.Slugify(name), Name: name, Icon: "..."}
}
