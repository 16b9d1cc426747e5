package components

// List is a paged cursor over items.
type List[T any] struct {
	items    []T
	cursor   int
	offset   int
	pageSize int
}

// NewList creates a list with the given page size.
func NewList[T any](pageSize int) *List[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	return &List[T]{pageSize: pageSize}
}

// SetItems replaces items and resets cursor.
func (l *List[T]) SetItems(items []T) {
	l.items = items
	l.cursor = 0
	l.offset = 0
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	return len(l.items)
}

// PageSize returns the number of visible rows.
func (l *List[T]) PageSize() int {
	return l.pageSize
}

// Down moves the cursor down.
func (l *List[T]) Down() {
	if l.cursor < len(l.items)-1 {
		l.cursor++
		if l.cursor >= l.offset+l.pageSize {
			l.offset++
		}
	}
}

// Up moves the cursor up.
func (l *List[T]) Up() {
	if l.cursor > 0 {
		l.cursor--
		if l.cursor < l.offset {
			l.offset--
		}
	}
}

// Select moves the cursor to idx, scrolling just enough to show it.
// Out-of-range indexes are clamped.
func (l *List[T]) Select(idx int) {
	if len(l.items) == 0 {
		return
	}
	idx = max(0, min(idx, len(l.items)-1))
	l.cursor = idx
	if idx < l.offset {
		l.offset = idx
	} else if idx >= l.offset+l.pageSize {
		l.offset = idx - l.pageSize + 1
	}
}

// Visible returns the currently visible items.
func (l *List[T]) Visible() []T {
	if len(l.items) == 0 {
		return nil
	}
	end := min(l.offset+l.pageSize, len(l.items))
	return l.items[l.offset:end]
}

// Cursor returns the index of the selected item.
func (l *List[T]) Cursor() int {
	return l.cursor
}

// Current returns the selected item.
func (l *List[T]) Current() (T, bool) {
	var zero T
	if len(l.items) == 0 {
		return zero, false
	}
	return l.items[l.cursor], true
}

// IsSelected returns true if the given absolute index is the cursor.
func (l *List[T]) IsSelected(absIdx int) bool {
	return absIdx == l.cursor
}

// RelToAbs converts a relative (visible) index to absolute.
func (l *List[T]) RelToAbs(relIdx int) int {
	return l.offset + relIdx
}
