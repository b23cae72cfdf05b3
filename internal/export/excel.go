// Package export builds the downloadable Excel progress report.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"compounding-bot/internal/locale"
	"compounding-bot/internal/model"
	"compounding-bot/internal/progress"
)

const sheetName = "Progress Report"

// Report renders the user's full history as an xlsx workbook: one row per
// recorded day with the balance, the expected balance at that date and the
// stop-loss verdict. Empty history yields (nil, nil) so the caller can send
// the "no history" message instead of a file.
func Report(p model.Profile) (*bytes.Buffer, error) {
	if len(p.History) == 0 {
		return nil, nil
	}

	lang := p.Language
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, errors.Wrap(err, "naming report sheet")
	}

	headers := []interface{}{
		locale.T(lang, "export_sheet_date"),
		locale.T(lang, "export_sheet_balance"),
		locale.T(lang, "export_sheet_expected"),
		locale.T(lang, "export_sheet_stoploss"),
	}
	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, errors.Wrap(err, "writing report header")
	}

	for i, entry := range p.History {
		row := []interface{}{
			entry.Date,
			locale.FormatMoney(p.Currency, entry.Balance.InexactFloat64()),
			locale.FormatMoney(p.Currency, expectedAt(p, entry.Date)),
			stoplossStatus(p, entry),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, errors.Wrapf(err, "writing report row %d", i+2)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "serializing report")
	}
	return buf, nil
}

// expectedAt evaluates the compounding projection at a history entry's
// date. Unparsable dates or a missing target degrade to zero rather than
// failing the whole report.
func expectedAt(p model.Profile, date string) float64 {
	if !p.HasTarget() || p.StartDate == "" {
		return 0
	}
	start, err1 := time.Parse(model.DateLayout, p.StartDate)
	day, err2 := time.Parse(model.DateLayout, date)
	if err1 != nil || err2 != nil {
		return 0
	}
	days := int(day.Sub(start).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return progress.Compound(
		p.Target.StartAmount.InexactFloat64(),
		p.Target.Rate.InexactFloat64(),
		p.Target.Mode,
		float64(days),
	)
}

func stoplossStatus(p model.Profile, entry model.HistoryEntry) string {
	if p.Stoploss == nil || !p.HasTarget() {
		return ""
	}
	if progress.BreachesStoploss(p, entry.Balance) {
		return locale.T(p.Language, "export_triggered")
	}
	return locale.T(p.Language, "export_safe")
}
