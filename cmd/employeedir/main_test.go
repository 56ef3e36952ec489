package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	out := &bytes.Buffer{}
	rootCmd := newRootCmd()
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"version"})

	require.NoError(t, rootCmd.Execute())
	require.Equal(t, version+"\n", out.String())
}

func TestMissingConfig(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	for _, sub := range []string{"server", "client"} {
		t.Run(sub, func(t *testing.T) {
			rootCmd := newRootCmd()
			rootCmd.SetOut(&bytes.Buffer{})
			rootCmd.SetErr(&bytes.Buffer{})
			rootCmd.SetArgs([]string{sub, "--config", missing})

			err := rootCmd.Execute()
			require.ErrorContains(t, err, "config not loaded")
		})
	}
}
