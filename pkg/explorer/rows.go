package explorer

import (
	"reflect"
	"time"

	"github.com/datatug/filtertug/pkg/files"
	"github.com/datatug/filtertug/pkg/filtering"
	"github.com/datatug/filtertug/pkg/fsutils"
	"github.com/datatug/filtertug/pkg/masks"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
)

var _ tview.TableContent = (*Rows)(nil)

const (
	nameColIndex     = 0
	sizeColIndex     = 1
	modifiedColIndex = 2
)

// Rows adapts a directory listing to a tview table. Every visibility
// decision is delegated to the filtering engine; the adapter only
// extracts a path and an is-directory flag per entry.
type Rows struct {
	tview.TableContentReadOnly
	dir     *files.DirContext
	all     []files.EntryWithDirPath
	visible []files.EntryWithDirPath
	request filtering.Request
	mask    *masks.Mask
}

func NewRows(dir *files.DirContext) *Rows {
	r := &Rows{
		dir: dir,
		all: dir.Entries(),
	}
	r.visible = r.all
	return r
}

// SetRequest applies a new filter to the listing. Requests are immutable
// and cheap, so the UI constructs a fresh one per keystroke.
func (r *Rows) SetRequest(req filtering.Request) {
	if err := req.Err(); err != nil {
		// The engine itself never fails; logging anomalies is our job.
		logrus.WithError(err).Warn("bad filter pattern, matching it as literal text")
	}
	r.request = req
	r.applyFilter()
}

func (r *Rows) Request() filtering.Request {
	return r.request
}

// SetMask applies a named mask on top of the filter request. A nil mask
// clears it.
func (r *Rows) SetMask(m *masks.Mask) {
	r.mask = m
	r.applyFilter()
}

func (r *Rows) applyFilter() {
	r.visible = make([]files.EntryWithDirPath, 0, len(r.all))
	for _, entry := range r.all {
		fullName := entry.FullName()
		isDir := entry.IsDir()
		if !filtering.Matches(fullName, isDir, r.request) {
			continue
		}
		if r.mask != nil && !r.mask.Matches(fullName, isDir) {
			continue
		}
		r.visible = append(r.visible, entry)
	}
}

func (r *Rows) AllEntries() []files.EntryWithDirPath {
	return r.all
}

func (r *Rows) VisibleEntries() []files.EntryWithDirPath {
	return r.visible
}

func (r *Rows) GetRowCount() int {
	if len(r.visible) == 0 {
		return 1 // the "No entries" row
	}
	return len(r.visible)
}

func (r *Rows) GetColumnCount() int {
	return 3
}

func (r *Rows) GetCell(row, col int) *tview.TableCell {
	if len(r.visible) == 0 {
		if row == 0 && col == nameColIndex {
			cell := tview.NewTableCell("[::i]No entries[::-]")
			cell.SetTextColor(tcell.ColorGray)
			return cell
		}
		return nil
	}
	if row < 0 || row >= len(r.visible) {
		return nil
	}
	entry := r.visible[row]
	switch col {
	case nameColIndex:
		name := entry.Name()
		displayName := "📄" + name
		if entry.IsDir() {
			displayName = "📁" + name
		}
		cell := tview.NewTableCell(displayName)
		cell.SetExpansion(1)
		cell.SetTextColor(GetColorByFileExt(name))
		cell.SetReference(entry)
		return cell
	case sizeColIndex:
		var sizeText string
		if !entry.IsDir() {
			if fi, err := entry.Info(); err == nil && fi != nil && !reflect.ValueOf(fi).IsNil() {
				sizeText = fsutils.SizeShortText(fi.Size())
			}
		}
		cell := tview.NewTableCell(sizeText)
		cell.SetAlign(tview.AlignRight)
		return cell
	case modifiedColIndex:
		var s string
		if fi, err := entry.Info(); err == nil && fi != nil && !reflect.ValueOf(fi).IsNil() {
			modTime := fi.ModTime()
			if !modTime.IsZero() {
				if time.Since(modTime) < 24*time.Hour {
					s = modTime.Format("15:04:05")
				} else {
					s = modTime.Format("2006-01-02")
				}
			}
		}
		return tview.NewTableCell(s)
	default:
		return nil
	}
}
