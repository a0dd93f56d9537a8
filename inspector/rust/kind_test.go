package rust

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseTree(t *testing.T, src []byte) *sitter.Tree {
	t.Helper()
	parser := sitter.NewParser()
	parser.SetLanguage(rust.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, src)
	require.NoError(t, err)
	t.Cleanup(tree.Close)
	return tree
}

func TestCollectCalls_UnhandledKind(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		node    func(root *sitter.Node) *sitter.Node
		want    UnhandledKindError
		wantMsg string
	}{
		{
			name:    "source file",
			src:     "fn a() { b(); }\n",
			node:    func(root *sitter.Node) *sitter.Node { return root },
			want:    UnhandledKindError{Kind: "source_file", Line: 1},
			wantMsg: `unhandled syntax kind "source_file" at line 1`,
		},
		{
			name: "parameters",
			src:  "\n\nfn a(x: u64) {}\n",
			node: func(root *sitter.Node) *sitter.Node {
				return root.NamedChild(0).ChildByFieldName("parameters")
			},
			want:    UnhandledKindError{Kind: "parameters", Line: 3},
			wantMsg: `unhandled syntax kind "parameters" at line 3`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := []byte(tt.src)
			node := tt.node(parseTree(t, src).RootNode())
			assert.PanicsWithValue(t, tt.want, func() {
				collectCalls(node, src)
			})
			assert.EqualError(t, tt.want, tt.wantMsg)
		})
	}
}

func TestCollectCalls_FunctionBody(t *testing.T) {
	src := []byte("fn a() { b(); self.c(d()); }\n")
	body := parseTree(t, src).RootNode().NamedChild(0).ChildByFieldName("body")
	assert.NotPanics(t, func() {
		assert.Equal(t, []string{"b", "c", "d"}, collectCalls(body, src))
	})
}
