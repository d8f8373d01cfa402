package datasource

// Hover reflects the pointer position across every materialized row. row is
// NoRow when the pointer left the list. All rows are recomputed on every
// event since the view may have recycled row widgets in between.
func (d *DataSource) Hover(row int) {
	d.hoveredRow = row
	if d.view == nil {
		return
	}
	for _, r := range d.view.MaterializedRows() {
		if row == NoRow {
			d.view.SetHighlightOpacity(r, DimmedOpacity)
			continue
		}
		opacity := DimmedOpacity
		if r == row {
			opacity = FullOpacity
		}
		d.view.SetHighlightOpacity(r, opacity)
	}
}

// HoveredRow returns the row under the pointer or NoRow. A delete or a new
// snapshot does not move it, so it can point past the end of the list until
// the next Hover.
func (d *DataSource) HoveredRow() int {
	return d.hoveredRow
}
