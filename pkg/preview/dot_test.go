package preview

import (
	"context"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/vizset/pkg/binding"
	"github.com/matzehuels/vizset/pkg/dataset"
	"github.com/matzehuels/vizset/pkg/errors"
	"github.com/matzehuels/vizset/pkg/table"
)

func prepare(t *testing.T, b binding.Binding, edges, nodes *table.Table) *dataset.Prepared {
	t.Helper()
	p, err := dataset.NewBuilder(dataset.Options{}).Prepare(b, edges, nodes)
	require.NoError(t, err)
	return p
}

func chain() *table.Table {
	return table.MustNew(
		table.Column{Name: "src", Values: []any{"a", "b"}},
		table.Column{Name: "dst", Values: []any{"b", "c"}},
		table.Column{Name: "label", Values: []any{"x", nil}},
	)
}

func TestToDOTGolden(t *testing.T) {
	b := binding.New(binding.Fields{Source: "src", Destination: "dst", EdgeLabel: "label"})

	dot, err := ToDOT(prepare(t, b, chain(), nil), Options{})
	require.NoError(t, err)

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "chain_dot", []byte(dot))
}

func TestToDOTNodeLabels(t *testing.T) {
	nodes := table.MustNew(
		table.Column{Name: "id", Values: []any{"a", "b", "c"}},
		table.Column{Name: "title", Values: []any{"Alpha", nil, "Gamma"}},
		table.Column{Name: "size", Values: []any{1, 2, 3}},
	)
	b := binding.New(binding.Fields{Source: "src", Destination: "dst", Node: "id", PointTitle: "title"})
	p := prepare(t, b, chain(), nodes)

	dot, err := ToDOT(p, Options{})
	require.NoError(t, err)
	assert.Contains(t, dot, `"a" [label="Alpha"];`)
	assert.Contains(t, dot, `"b" [label="b"];`)

	dot, err = ToDOT(p, Options{Detailed: true})
	require.NoError(t, err)
	assert.Contains(t, dot, `"c" [label="Gamma\ntitle: Gamma\nsize: 3"];`)
}

func TestToDOTMaxNodes(t *testing.T) {
	b := binding.New(binding.Fields{Source: "src", Destination: "dst"})
	p := prepare(t, b, chain(), nil)

	_, err := ToDOT(p, Options{MaxNodes: 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	_, err = ToDOT(p, Options{MaxNodes: -1})
	assert.NoError(t, err)
}

func TestRenderSVG(t *testing.T) {
	b := binding.New(binding.Fields{Source: "src", Destination: "dst"})
	dot, err := ToDOT(prepare(t, b, chain(), nil), Options{})
	require.NoError(t, err)

	svg, err := RenderSVG(context.Background(), dot)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(svg), "<svg"))
	assert.Contains(t, string(svg), `viewBox="0 0 `)
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "rewrites root",
			in:   `<svg width="10pt" viewBox="0.00 0.00 100.50 40.00"><g/></svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.50 40.00" width="100" height="40"><g/></svg>`,
		},
		{
			name: "no viewBox",
			in:   `<svg><g/></svg>`,
			want: `<svg><g/></svg>`,
		},
		{
			name: "empty box",
			in:   `<svg viewBox="0 0 0 10"></svg>`,
			want: `<svg viewBox="0 0 0 10"></svg>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(normalizeViewBox([]byte(tt.in))))
		})
	}
}
