package dataset

import (
	"bytes"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/vizset/pkg/binding"
	"github.com/matzehuels/vizset/pkg/table"
)

func bufferLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.NewWithOptions(&buf, log.Options{Level: log.WarnLevel}), &buf
}

// triangleEdges is the 0→1→2→0 cycle.
func triangleEdges() *table.Table {
	return table.MustNew(
		table.Column{Name: "src", Values: []any{0, 1, 2}},
		table.Column{Name: "dst", Values: []any{1, 2, 0}},
	)
}

func srcDst() binding.Binding {
	return binding.New(binding.Fields{Source: "src", Destination: "dst"})
}

func fixedName() string { return "TESTNAME01" }
