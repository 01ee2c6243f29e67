package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteListCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"route:list"})
	require.NoError(t, rootCmd.Execute())

	body := out.String()
	assert.Contains(t, body, "METHOD")
	assert.Contains(t, body, "/items/")
	assert.Contains(t, body, "/mrv-master-products/{id}")
	assert.Contains(t, body, "uom.destroy")
}
