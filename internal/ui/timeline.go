package ui

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/table"

	"github.com/five82/daywall/internal/anchor"
)

const activeMarker = "▶"

func timelineColumns(width int) []table.Column {
	const (
		markerWidth  = 2
		timeWidth    = 8
		segmentWidth = 10
	)
	if width < LayoutCompactWidth {
		image := max(10, width-markerWidth-timeWidth-4)
		return []table.Column{
			{Title: "", Width: markerWidth},
			{Title: "Until", Width: timeWidth},
			{Title: "Image", Width: image},
		}
	}
	image := max(10, width-markerWidth-timeWidth-segmentWidth-6)
	return []table.Column{
		{Title: "", Width: markerWidth},
		{Title: "Until", Width: timeWidth},
		{Title: "Segment", Width: segmentWidth},
		{Title: "Image", Width: image},
	}
}

// updateTable rebuilds the rows from the snapshot and, in follow mode,
// moves the cursor to the active entry.
func (m *Model) updateTable() {
	active := m.snapshot.ActiveIndex()
	compact := len(m.table.Columns()) == 3

	rows := make([]table.Row, 0, len(m.snapshot.Timeline))
	for i, e := range m.snapshot.Timeline {
		marker := ""
		if i == active {
			marker = activeMarker
		}
		at := e.Time(m.loc).Format("15:04:05")
		if compact {
			rows = append(rows, table.Row{marker, at, filepath.Base(e.Image)})
			continue
		}
		seg := ""
		if s, ok := segmentOf(m.snapshot.Anchors, e.At); ok {
			seg = s.Key()
		}
		rows = append(rows, table.Row{marker, at, seg, filepath.Base(e.Image)})
	}
	m.table.SetRows(rows)

	if m.follow && active >= 0 {
		m.table.SetCursor(active)
	}
}

func (m Model) renderTimeline() string {
	styles := m.theme.Styles()
	if m.snapshot.HasDay && len(m.snapshot.Timeline) == 0 {
		return styles.Panel.Width(m.width - 2).Render(styles.MutedText.Render("pack has no images"))
	}
	return styles.Panel.Render(m.table.View())
}

// segmentOf returns the segment whose span (start, end] contains at.
func segmentOf(anchors anchor.Set, at int64) (anchor.Segment, bool) {
	for _, seg := range anchor.Segments() {
		start, end := anchors.Span(seg)
		if at > start && at <= end {
			return seg, true
		}
	}
	return 0, false
}
