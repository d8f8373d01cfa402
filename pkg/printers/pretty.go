// Package printers renders panel rows for the command line.
package printers

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/clocker/pkg/datasource"
)

// PrettyPrint writes panel rows as an aligned table.
type PrettyPrint struct {
	Out    io.Writer
	ShowID bool
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

// Title prints an underlined heading with a row count.
func (pp *PrettyPrint) Title(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	switch count {
	case 1:
		_, _ = c.Fprintf(pp.out(), " - %d timezone\n", count)
	default:
		_, _ = c.Fprintf(pp.out(), " - %d timezones\n", count)
	}
}

// Rows prints every row of ds, including the empty-state row.
func (pp *PrettyPrint) Rows(ds *datasource.DataSource) {
	items := ds.Items()
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(pp.out(), " none, add one with `clocker add <timezone>`")
		return
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	home := color.New(color.FgHiCyan)
	id := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	for i := 0; i < ds.RowCount(); i++ {
		row := ds.RowContent(i)
		marker := " "
		if row.ShowCurrentLocation {
			marker = home.Sprint("⌂")
		}
		sun := ""
		if row.ShowSunrise {
			sun = row.SunIcon + " " + row.SunriseSetTime
		}
		cells := []interface{}{
			faint.Sprint(strconv.Itoa(i)),
			marker,
			bold.Sprint(row.Label),
			row.Time,
			faint.Sprint(row.RelativeDate),
			sun,
			faint.Sprint(row.Note),
		}
		if pp.ShowID {
			cells = append(cells, id.Sprint(items[i].ID))
		}
		tbl.AddRow(cells...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}
