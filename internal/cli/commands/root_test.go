package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	assert.Equal(t, "gqlweave", cmd.Use)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "generate")
	assert.Contains(t, names, "validate")
	assert.Contains(t, names, "init")
	assert.Contains(t, names, "version")
}

func TestVersionCommand(t *testing.T) {
	cmd := NewVersionCommand()
	assert.Equal(t, "version", cmd.Use)
	assert.NotNil(t, cmd.Run)
}
