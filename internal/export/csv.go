// Package export renders expense lists into file formats for download.
package export

import (
	"encoding/csv"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/spendtrack/backend/internal/models"
)

var csvHeader = []string{"id", "title", "amount", "category", "date"}

// ExpensesCSV writes the expenses as CSV to w. The output starts with a
// UTF-8 byte order mark so that spreadsheet applications detect the
// encoding. Amounts are formatted with two decimal places, dates as
// calendar days.
func ExpensesCSV(w io.Writer, expenses []models.Expense) error {
	bom := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())

	writer := csv.NewWriter(bom)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for _, expense := range expenses {
		record := []string{
			expense.ID.String(),
			expense.Title,
			expense.Amount.StringFixed(2),
			expense.Category,
			expense.Date.Format("2006-01-02"),
		}

		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	return bom.Close()
}
