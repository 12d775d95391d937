package explorer

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/datatug/filtertug/pkg/files"
	"github.com/datatug/filtertug/pkg/filtering"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
)

// Tree shows the directory hierarchy. Nodes reference full directory
// paths; both incremental search and filter dimming go through the
// filtering engine on those paths.
type Tree struct {
	*tview.TreeView
	store  files.Store
	search string

	onSelect func(dirPath string)
}

func NewTree(store files.Store, rootPath string) *Tree {
	t := &Tree{
		TreeView: tview.NewTreeView(),
		store:    store,
	}
	root := tview.NewTreeNode(rootPath)
	root.SetReference(rootPath)
	t.SetRoot(root)
	t.SetCurrentNode(root)
	t.loadChildren(root)
	t.SetSelectedFunc(t.onNodeSelected)
	t.SetChangedFunc(t.onNodeChanged)
	t.SetInputCapture(t.inputCapture)
	return t
}

// SetSelectFunc registers a callback invoked when the selected
// directory changes.
func (t *Tree) SetSelectFunc(f func(dirPath string)) {
	t.onSelect = f
}

func (t *Tree) onNodeChanged(node *tview.TreeNode) {
	if dirPath, ok := node.GetReference().(string); ok && t.onSelect != nil {
		t.onSelect(dirPath)
	}
}

func (t *Tree) onNodeSelected(node *tview.TreeNode) {
	if len(node.GetChildren()) == 0 {
		t.loadChildren(node)
	}
	node.SetExpanded(!node.IsExpanded())
}

// loadChildren lists the subdirectories of node lazily, on first expand.
func (t *Tree) loadChildren(node *tview.TreeNode) {
	dirPath, ok := node.GetReference().(string)
	if !ok {
		return
	}
	entries, err := t.store.ReadDir(context.Background(), dirPath)
	if err != nil {
		logrus.WithError(err).Debug("failed to list tree dir")
		return
	}
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		child := tview.NewTreeNode(entry.Name())
		child.SetReference(path.Join(dirPath, entry.Name()))
		node.AddChild(child)
	}
}

// SetFilter dims directories that fall outside req. Matching is
// recursive-scope by nature here: a branch stays bright when the node
// itself matches.
func (t *Tree) SetFilter(req filtering.Request) {
	dimTreeNodes(t.GetRoot(), req, true)
}

func dimTreeNodes(n *tview.TreeNode, req filtering.Request, isRoot bool) {
	if !isRoot {
		if dirPath, ok := n.GetReference().(string); ok {
			if filtering.Matches(dirPath, true, req) {
				n.SetColor(tcell.ColorWhite)
			} else {
				n.SetColor(tcell.ColorGray)
			}
		}
	}
	for _, child := range n.GetChildren() {
		dimTreeNodes(child, req, false)
	}
}

// SetSearch highlights nodes whose name contains pattern and moves the
// selection to the best candidate: a name-prefix match wins over a mere
// substring match. An unmatchable pattern is shortened until something
// matches, which makes typos self-correcting while typing.
func (t *Tree) SetSearch(pattern string) {
	t.search = pattern
	if pattern == "" {
		t.SetTitle("")
	} else {
		t.SetTitle(fmt.Sprintf("Find: %s", pattern))
	}
	ctx := &searchContext{
		request: filtering.TextFilter(pattern, ""),
		pattern: strings.ToLower(pattern),
	}
	highlightTreeNodes(t.GetRoot(), ctx, true)
	if ctx.firstPrefixed != nil {
		t.SetCurrentNode(ctx.firstPrefixed)
	} else if ctx.firstContains != nil {
		t.SetCurrentNode(ctx.firstContains)
	} else if len(t.search) > 0 {
		t.SetSearch(t.search[:len(t.search)-1])
	}
}

type searchContext struct {
	request       filtering.Request
	pattern       string
	firstContains *tview.TreeNode
	firstPrefixed *tview.TreeNode
}

func highlightTreeNodes(n *tview.TreeNode, ctx *searchContext, isRoot bool) {
	if !isRoot {
		if dirPath, ok := n.GetReference().(string); ok {
			name := path.Base(dirPath)
			if filtering.Matches(dirPath, true, ctx.request) {
				lowerName := strings.ToLower(name)
				i := strings.Index(lowerName, ctx.pattern)
				if i >= 0 && ctx.pattern != "" {
					ss := name[i : i+len(ctx.pattern)]
					formatted := fmt.Sprintf("[black:lightgreen]%s[-:-]", ss)
					n.SetText(strings.ReplaceAll(name, ss, formatted))
				} else {
					n.SetText(name)
				}
				if ctx.firstContains == nil {
					ctx.firstContains = n
				}
				if ctx.firstPrefixed == nil && strings.HasPrefix(lowerName, ctx.pattern) {
					ctx.firstPrefixed = n
				}
			} else {
				n.SetText(name)
			}
		}
	}
	for _, child := range n.GetChildren() {
		highlightTreeNodes(child, ctx, false)
	}
}

func (t *Tree) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if t.search != "" {
			t.SetSearch(t.search[:len(t.search)-1])
			return nil
		}
		return event
	case tcell.KeyEscape:
		t.SetSearch("")
		return nil
	case tcell.KeyRune:
		s := string(event.Rune())
		if t.search == "" && s == " " {
			return event
		}
		t.SetSearch(t.search + strings.ToLower(s))
		return nil
	default:
		return event
	}
}
