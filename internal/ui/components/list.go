package components

// List tracks the cursor and scroll window over the visible card stack. It
// holds a count rather than rendered rows: the card renderer owns the rows.
type List struct {
	count    int
	cursor   int
	offset   int
	pageSize int
}

// NewList creates a list showing pageSize entries at a time.
func NewList(pageSize int) *List {
	if pageSize < 1 {
		pageSize = 1
	}
	return &List{pageSize: pageSize}
}

// SetCount replaces the entry count, clamping the cursor so it stays valid
// when the visible subset shrinks under an active filter.
func (l *List) SetCount(count int) {
	if count < 0 {
		count = 0
	}
	l.count = count
	if l.cursor >= count {
		l.cursor = count - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.clampOffset()
}

// SetPageSize adjusts how many entries fit, keeping the cursor visible.
func (l *List) SetPageSize(pageSize int) {
	if pageSize < 1 {
		pageSize = 1
	}
	l.pageSize = pageSize
	l.clampOffset()
}

// Down moves the cursor down one entry.
func (l *List) Down() {
	if l.cursor < l.count-1 {
		l.cursor++
		l.clampOffset()
	}
}

// Up moves the cursor up one entry.
func (l *List) Up() {
	if l.cursor > 0 {
		l.cursor--
		l.clampOffset()
	}
}

// Selected returns the cursor index; -1 when the list is empty.
func (l *List) Selected() int {
	if l.count == 0 {
		return -1
	}
	return l.cursor
}

// Window returns the [start, end) range of visible entries.
func (l *List) Window() (int, int) {
	end := l.offset + l.pageSize
	if end > l.count {
		end = l.count
	}
	return l.offset, end
}

func (l *List) clampOffset() {
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.pageSize {
		l.offset = l.cursor - l.pageSize + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}
