//go:build e2e && unix

package main

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// The browser watches the catalog on disk, so edits show up without a
// restart or a manual reload.
func TestCatalogUpdatesWhileRunning(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	recordPath, err := tf.CreateTestProduct("Lavender Soap", WithCategory("Bath"))
	require.NoError(t, err, "Failed to create test product")

	err = tf.StartApp("-d", workspace)
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Lavender Soap"), "Initial product should be listed")

	// Drop a new record in while the app is running
	_, err = tf.CreateTestProduct("Neem Comb", WithCategory("Bath"))
	require.NoError(t, err, "Failed to create test product")

	require.True(t, tf.OutputContainsPlain("Neem Comb", 10*time.Second), "New product files should appear without a reload")
	require.True(t, tf.OutputContainsPlain("Bath (2)", 10*time.Second), "Category count should follow")

	// Deleting the record removes the product. The count header
	// repaints with the removal, so its last paint must come after the
	// last "Bath (2)" one.
	require.NoError(t, os.Remove(recordPath), "Failed to remove product record")
	require.True(t, tf.OutputContainsPlain("Product removed from catalog", 10*time.Second), "Removals should be picked up")
	require.True(t, tf.WaitFor(func(s string) bool {
		plain := ansiRe.ReplaceAllString(s, "")
		return strings.LastIndex(plain, "Bath (1)") > strings.LastIndex(plain, "Bath (2)")
	}, 10*time.Second), "Category count should shrink")

	tf.Quit()
}
