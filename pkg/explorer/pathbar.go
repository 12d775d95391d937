package explorer

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
)

// PathBar renders the current directory as breadcrumb segments above
// the explorer.
type PathBar struct {
	*tview.TextView
	separator string
}

func WithSeparator(separator string) func(*PathBar) {
	return func(b *PathBar) {
		b.separator = separator
	}
}

func NewPathBar(o ...func(*PathBar)) *PathBar {
	b := &PathBar{
		TextView:  tview.NewTextView(),
		separator: " › ",
	}
	b.SetDynamicColors(true)
	for _, opt := range o {
		opt(b)
	}
	return b
}

// SetPath replaces the breadcrumbs with the segments of dirPath.
func (b *PathBar) SetPath(dirPath string) {
	segments := splitPathSegments(dirPath)
	parts := make([]string, len(segments))
	for i, s := range segments {
		if i == len(segments)-1 {
			parts[i] = fmt.Sprintf("[white::b]%s[-::-]", tview.Escape(s))
		} else {
			parts[i] = fmt.Sprintf("[gray]%s[-]", tview.Escape(s))
		}
	}
	b.SetText(" " + strings.Join(parts, fmt.Sprintf("[yellow]%s[-]", b.separator)))
}

func splitPathSegments(dirPath string) []string {
	if dirPath == "" || dirPath == "/" {
		return []string{"/"}
	}
	segments := []string{"/"}
	for _, s := range strings.Split(strings.Trim(dirPath, "/"), "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
