//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSeedCommand(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	// seed is a plain subcommand, no PTY needed
	out, err := exec.Command(binPath, "seed", workspace).CombinedOutput()
	require.NoError(t, err, "seed should succeed: %s", string(out))
	require.Contains(t, string(out), "Seeded 8 products in", "Seed should report the product count")
	require.Contains(t, string(out), "Browse them with: shopfront ", "Seed should print the follow-up command")

	_, err = os.Stat(filepath.Join(workspace, "products", "sunflower-oil-1l.toml"))
	require.NoError(t, err, "Seed should write product records")
	_, err = os.Stat(filepath.Join(workspace, "assets", "descriptions", "sunflower-oil.md"))
	require.NoError(t, err, "Seed should write description files")

	// The seeded catalog should browse cleanly
	err = tf.StartApp("-d", workspace)
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.OutputContainsPlain("Catalog loaded. 8 products.", 10*time.Second), "All seeded products should load")
	require.True(t, tf.OutputContainsPlain("Retail Pack (5)", 5*time.Second), "Retail Pack category should show its count")
	require.True(t, tf.OutputContainsPlain("Cold Pressed Sunflower Oil", 5*time.Second), "Seeded products should be listed")
	require.True(t, tf.OutputContainsPlain("₹249.00", 5*time.Second), "Seeded prices should render")

	tf.Quit()
}
