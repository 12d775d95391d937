package explorer

import (
	"testing"

	"github.com/datatug/filtertug/pkg/filtering"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_LoadsSubdirectories(t *testing.T) {
	tree := NewTree(newFakeStore(), "/")
	children := tree.GetRoot().GetChildren()
	require.Len(t, children, 1)
	assert.Equal(t, "proj", children[0].GetText())
	assert.Equal(t, "/proj", children[0].GetReference())
}

func TestTree_SelectedExpandsLazily(t *testing.T) {
	tree := NewTree(newFakeStore(), "/")
	proj := tree.GetRoot().GetChildren()[0]

	tree.onNodeSelected(proj)
	children := proj.GetChildren()
	require.Len(t, children, 1)
	assert.Equal(t, "/proj/sub", children[0].GetReference())
}

func TestTree_SetSearch(t *testing.T) {
	tree := NewTree(newFakeStore(), "/")
	proj := tree.GetRoot().GetChildren()[0]
	tree.onNodeSelected(proj)

	tree.SetSearch("pro")
	assert.Equal(t, proj, tree.GetCurrentNode())

	// Unmatchable input self-corrects by shortening.
	tree.SetSearch("proz")
	assert.Equal(t, proj, tree.GetCurrentNode())

	tree.SetSearch("")
	assert.Equal(t, "", tree.search)
}

func TestTree_SetFilter(t *testing.T) {
	tree := NewTree(newFakeStore(), "/")
	proj := tree.GetRoot().GetChildren()[0]
	tree.onNodeSelected(proj)
	sub := proj.GetChildren()[0]

	tree.SetFilter(filtering.TextFilter("sub", ""))
	assert.Equal(t, tcell.ColorGray, proj.GetColor())
	assert.Equal(t, tcell.ColorWhite, sub.GetColor())

	tree.SetFilter(filtering.Request{})
	assert.Equal(t, tcell.ColorWhite, proj.GetColor())
}

func TestTree_SelectCallback(t *testing.T) {
	tree := NewTree(newFakeStore(), "/")
	var selected string
	tree.SetSelectFunc(func(dirPath string) { selected = dirPath })
	tree.onNodeChanged(tree.GetRoot().GetChildren()[0])
	assert.Equal(t, "/proj", selected)
}
