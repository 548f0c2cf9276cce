package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplate(t *testing.T) {
	old := Version
	defer func() { Version = old }()
	Version = "v1.2.3"

	got := Template()
	assert.Regexp(t, `^\{\{\.Name\}\} version v1\.2\.3\n`, got)
	assert.Regexp(t, `\n$`, got)
}

func TestString(t *testing.T) {
	got := String()
	for _, want := range []string{"version: " + Version, "commit: " + Commit, "built: " + Date} {
		assert.Contains(t, got, want)
	}
}
