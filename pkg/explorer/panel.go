package explorer

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/datatug/filtertug/pkg/files"
	"github.com/datatug/filtertug/pkg/filtering"
	"github.com/datatug/filtertug/pkg/masks"
	"github.com/datatug/filtertug/pkg/state"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
)

var saveCurrentDir = state.SaveCurrentDir
var saveLastFilter = state.SaveLastFilter

var loadMasks = func() []masks.Mask {
	all, err := masks.All(state.MasksFilePath())
	if err != nil {
		logrus.WithError(err).Warn("bad mask definitions")
	}
	return all
}

// Panel is the files half of the explorer: a filter box above a table.
// The panel owns the "current request" as local state; the filtering
// engine itself is stateless.
type Panel struct {
	*tview.Flex
	app   *tview.Application
	store files.Store
	table *tview.Table
	input *tview.InputField
	rows  *Rows
	dir   *files.DirContext

	caseSensitive bool
	includeHidden bool
	filesOnly     bool

	masks   []masks.Mask
	maskIdx int

	onDirChange func(dirPath string)
}

func NewPanel(app *tview.Application, store files.Store) *Panel {
	p := &Panel{
		app:     app,
		store:   store,
		maskIdx: -1,
	}

	p.input = tview.NewInputField()
	p.input.SetLabel(" Filter: ")
	p.input.SetFieldBackgroundColor(tcell.ColorBlack)
	p.input.SetChangedFunc(p.onFilterChanged)
	p.input.SetDoneFunc(p.onFilterDone)

	p.table = tview.NewTable()
	p.table.SetSelectable(true, false)
	p.table.SetInputCapture(p.tableInputCapture)
	p.table.SetSelectedFunc(p.onEntrySelected)

	p.Flex = tview.NewFlex()
	p.Flex.SetDirection(tview.FlexRow)
	p.Flex.AddItem(p.input, 1, 0, false)
	p.Flex.AddItem(p.table, 0, 1, true)
	return p
}

// SetDirChangeFunc registers a callback invoked after the panel
// navigates to a new directory.
func (p *Panel) SetDirChangeFunc(f func(dirPath string)) {
	p.onDirChange = f
}

// ShowDir lists dirPath and re-applies the current filter text to the
// fresh listing.
func (p *Panel) ShowDir(ctx context.Context, dirPath string) error {
	entries, err := p.store.ReadDir(ctx, dirPath)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", dirPath, err)
	}
	p.dir = files.NewDirContext(p.store, dirPath, entries)
	p.rows = NewRows(p.dir)
	p.rows.SetRequest(p.buildRequest(p.input.GetText()))
	p.rows.SetMask(p.currentMask())
	p.table.SetContent(p.rows)
	p.table.Select(0, 0)
	p.table.ScrollToBeginning()
	if err = saveCurrentDir(p.dir.Path); err != nil {
		logrus.WithError(err).Debug("failed to persist current dir")
	}
	if p.onDirChange != nil {
		p.onDirChange(p.dir.Path)
	}
	return nil
}

func (p *Panel) Dir() *files.DirContext { return p.dir }
func (p *Panel) Rows() *Rows            { return p.rows }

// ToggleHidden flips dot-file visibility and re-filters.
func (p *Panel) ToggleHidden() {
	p.includeHidden = !p.includeHidden
	p.refilter()
}

// ToggleFilesOnly flips the files-only target and re-filters.
func (p *Panel) ToggleFilesOnly() {
	p.filesOnly = !p.filesOnly
	p.refilter()
}

// ToggleCaseSensitive flips pattern case sensitivity and re-filters.
func (p *Panel) ToggleCaseSensitive() {
	p.caseSensitive = !p.caseSensitive
	p.refilter()
}

// CycleMask steps through the known masks, ending on "no mask". The
// active mask narrows the listing on top of the typed filter.
func (p *Panel) CycleMask() {
	if p.masks == nil {
		p.masks = loadMasks()
	}
	p.maskIdx++
	if p.maskIdx >= len(p.masks) {
		p.maskIdx = -1
	}
	if mask := p.currentMask(); mask == nil {
		p.input.SetLabel(" Filter: ")
	} else {
		p.input.SetLabel(fmt.Sprintf(" Filter (%s): ", mask.Name))
	}
	if p.rows != nil {
		p.rows.SetMask(p.currentMask())
	}
}

func (p *Panel) currentMask() *masks.Mask {
	if p.maskIdx < 0 || p.maskIdx >= len(p.masks) {
		return nil
	}
	return &p.masks[p.maskIdx]
}

// buildRequest turns the typed filter text plus the panel toggles into
// an immutable request scoped to the current directory.
func (p *Panel) buildRequest(text string) filtering.Request {
	if strings.TrimSpace(text) == "" {
		// An empty filter box is "match all", but the hidden and
		// files-only toggles must still apply; an empty pattern would
		// short-circuit past them.
		text = "*"
	}
	var referencePath string
	if p.dir != nil {
		referencePath = p.dir.Path
	}
	var o []filtering.Option
	if p.caseSensitive {
		o = append(o, filtering.CaseSensitive())
	}
	if p.includeHidden {
		o = append(o, filtering.IncludeHidden())
	}
	if p.filesOnly {
		o = append(o, filtering.WithTarget(filtering.TargetFiles))
	}
	return filtering.GlobFilter(text, referencePath, o...)
}

func (p *Panel) refilter() {
	if p.rows == nil {
		return
	}
	p.rows.SetRequest(p.buildRequest(p.input.GetText()))
}

func (p *Panel) onFilterChanged(string) {
	p.refilter()
}

// onFilterDone is called when typing in the filter box ends. Enter
// commits the filter to the recent list and moves focus to the table.
func (p *Panel) onFilterDone(key tcell.Key) {
	switch key {
	case tcell.KeyEnter:
		if p.rows != nil && strings.TrimSpace(p.input.GetText()) != "" {
			if err := saveLastFilter(p.rows.Request()); err != nil {
				logrus.WithError(err).Debug("failed to persist filter")
			}
		}
		p.app.SetFocus(p.table)
	case tcell.KeyEscape:
		p.input.SetText("")
		p.app.SetFocus(p.table)
	}
}

func (p *Panel) onEntrySelected(row, _ int) {
	if p.rows == nil || row < 0 || row >= len(p.rows.VisibleEntries()) {
		return
	}
	entry := p.rows.VisibleEntries()[row]
	if !entry.IsDir() {
		return
	}
	if err := p.ShowDir(context.Background(), entry.FullName()); err != nil {
		logrus.WithError(err).Error("failed to open directory")
	}
}

func (p *Panel) goUp() {
	if p.dir == nil || p.dir.Path == "" || p.dir.Path == "/" {
		return
	}
	if err := p.ShowDir(context.Background(), path.Dir(p.dir.Path)); err != nil {
		logrus.WithError(err).Error("failed to open parent directory")
	}
}

func (p *Panel) tableInputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyLeft, tcell.KeyBackspace, tcell.KeyBackspace2:
		p.goUp()
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case '/':
			p.app.SetFocus(p.input)
			return nil
		case '.':
			p.ToggleHidden()
			return nil
		case 'f':
			p.ToggleFilesOnly()
			return nil
		case 'c':
			p.ToggleCaseSensitive()
			return nil
		case 'm':
			p.CycleMask()
			return nil
		}
	}
	return event
}
