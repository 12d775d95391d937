package explorer

import (
	"context"
	"fmt"

	"github.com/datatug/filtertug/pkg/files"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Explorer is the two-column layout: directory tree on the left, the
// filtered file listing on the right.
type Explorer struct {
	*tview.Flex
	app     *tview.Application
	PathBar *PathBar
	Tree    *Tree
	Panel   *Panel
}

func NewExplorer(app *tview.Application, store files.Store, startDir string) (*Explorer, error) {
	e := &Explorer{
		app:     app,
		PathBar: NewPathBar(),
		Tree:    NewTree(store, startDir),
		Panel:   NewPanel(app, store),
	}

	e.Tree.SetSelectFunc(func(dirPath string) {
		_ = e.Panel.ShowDir(context.Background(), dirPath)
	})
	e.Panel.SetDirChangeFunc(e.PathBar.SetPath)

	if err := e.Panel.ShowDir(context.Background(), startDir); err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", startDir, err)
	}

	columns := tview.NewFlex()
	columns.AddItem(e.Tree, 0, 1, false)
	columns.AddItem(e.Panel, 0, 2, true)

	e.Flex = tview.NewFlex()
	e.Flex.SetDirection(tview.FlexRow)
	e.Flex.AddItem(e.PathBar, 1, 0, false)
	e.Flex.AddItem(columns, 0, 1, true)
	e.Flex.SetInputCapture(e.inputCapture)
	return e, nil
}

func (e *Explorer) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyTab {
		if e.Tree.HasFocus() {
			e.app.SetFocus(e.Panel)
		} else {
			e.app.SetFocus(e.Tree)
		}
		return nil
	}
	return event
}

// SetupApp wires a fully working explorer into app.
func SetupApp(app *tview.Application, store files.Store, startDir string) error {
	e, err := NewExplorer(app, store, startDir)
	if err != nil {
		return err
	}
	app.SetRoot(e, true)
	app.SetFocus(e.Panel)
	return nil
}
