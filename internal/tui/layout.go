package tui

// Layout proportions
const (
	ListColumnPercent = 45 // film list when details are shown
	MinColumnWidth    = 24

	// Vertical layout: single footer line
	ChromeHeight = 1
)

// columnLayout holds calculated column widths for the View
type columnLayout struct {
	listWidth      int
	inspectorWidth int // 0 if not shown
}

// calculateColumnLayout splits the width between list and details
func (m Model) calculateColumnLayout(availableWidth int) columnLayout {
	if !m.ShowInspector {
		return columnLayout{listWidth: availableWidth}
	}

	listWidth := max(availableWidth*ListColumnPercent/100, MinColumnWidth)
	inspectorWidth := availableWidth - listWidth
	if inspectorWidth < MinColumnWidth {
		// Too narrow for two columns
		return columnLayout{listWidth: availableWidth}
	}
	return columnLayout{listWidth: listWidth, inspectorWidth: inspectorWidth}
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	contentHeight := max(m.Height-ChromeHeight, 1)
	layout := m.calculateColumnLayout(m.Width)

	m.FilmList.SetSize(layout.listWidth, contentHeight)
	if layout.inspectorWidth > 0 {
		m.Inspector.SetSize(layout.inspectorWidth, contentHeight)
	}
}
