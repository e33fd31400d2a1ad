package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	padelelo "github.com/hedon954/padel-elo"
)

const SheetName = "Ratings"

var header = []string{"Event", "Kind", "Pair", "Player", "Before", "Delta", "After"}

// Row is one player's line in a settlement report.
type Row struct {
	EventID  string
	Kind     string
	PairID   string
	PlayerID string
	Before   int
	Delta    int
	After    int
}

func (r Row) cells() []any {
	return []any{r.EventID, r.Kind, r.PairID, r.PlayerID, r.Before, r.Delta, r.After}
}

// Rows flattens settlements into report rows, in settlement order.
func Rows(settlements ...*padelelo.Settlement) []Row {
	var rows []Row
	for _, s := range settlements {
		if s == nil {
			continue
		}
		for _, c := range s.Changes {
			rows = append(rows, Row{
				EventID:  s.EventID,
				Kind:     string(s.Kind),
				PairID:   c.PairID,
				PlayerID: c.PlayerID,
				Before:   int(c.Before),
				Delta:    int(c.Delta),
				After:    int(c.After),
			})
		}
	}
	return rows
}

// WriteTable renders settlements as an aligned text table.
func WriteTable(w io.Writer, settlements ...*padelelo.Settlement) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, h := range header {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, h)
	}
	fmt.Fprintln(tw)
	for _, r := range Rows(settlements...) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%+d\t%d\n",
			r.EventID, r.Kind, r.PairID, r.PlayerID, r.Before, r.Delta, r.After)
	}
	return tw.Flush()
}

// WriteXLSX writes settlements to a single-sheet workbook at path.
func WriteXLSX(path string, settlements ...*padelelo.Settlement) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return errors.Wrap(err, "failed to name sheet")
	}

	headerCells := make([]any, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &headerCells); err != nil {
		return errors.Wrap(err, "failed to write header")
	}

	for i, r := range Rows(settlements...) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrapf(err, "row %d", i+2)
		}
		cells := r.cells()
		if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
			return errors.Wrapf(err, "failed to write row %d", i+2)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "failed to save %s", path)
	}
	return nil
}

// DeltaSummary describes the spread of rating changes.
type DeltaSummary struct {
	Players int
	Mean    float64
	StdDev  float64
	Min     float64
	Max     float64
}

// Summary computes the spread of every delta in settlements.
func Summary(settlements ...*padelelo.Settlement) (DeltaSummary, error) {
	data := stats.Float64Data{}
	for _, r := range Rows(settlements...) {
		data = append(data, float64(r.Delta))
	}
	if data.Len() == 0 {
		return DeltaSummary{}, nil
	}

	var (
		sum DeltaSummary
		err error
	)
	sum.Players = data.Len()
	if sum.Mean, err = data.Mean(); err != nil {
		return DeltaSummary{}, errors.Wrap(err, "mean")
	}
	if sum.StdDev, err = data.StandardDeviation(); err != nil {
		return DeltaSummary{}, errors.Wrap(err, "standard deviation")
	}
	if sum.Min, err = data.Min(); err != nil {
		return DeltaSummary{}, errors.Wrap(err, "min")
	}
	if sum.Max, err = data.Max(); err != nil {
		return DeltaSummary{}, errors.Wrap(err, "max")
	}
	return sum, nil
}
