package tui

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// mapArea is the map canvas position and size in terminal cells.
type mapArea struct {
	x, y int
	w, h int
}

func (a mapArea) contains(cx, cy int) bool {
	return cx >= a.x && cx < a.x+a.w && cy >= a.y && cy < a.y+a.h
}

// layout mirrors the arrangement in View so mouse events can be mapped
// onto the canvas.
func (m Model) layout() (area mapArea, contentW, contentH int) {
	contentH = max(4, m.height-headerHeight-footerHeight)
	contentW = max(10, m.width)
	sw, x := 0, 0
	if m.showSidebar {
		sw, x = sidebarWidth, sidebarWidth+1
	}
	area = mapArea{
		x: x,
		y: headerHeight,
		w: max(8, contentW-sw-1),
		h: contentH,
	}
	return area, contentW, contentH
}
