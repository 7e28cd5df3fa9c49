//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSearchNavigatesMatches(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	_, err = tf.CreateTestProduct("Red Chili Powder", WithCategory("Spices"))
	require.NoError(t, err, "Failed to create test product")
	_, err = tf.CreateTestProduct("Red Rice", WithCategory("Pantry"))
	require.NoError(t, err, "Failed to create test product")
	_, err = tf.CreateTestProduct("Turmeric Powder", WithCategory("Spices"))
	require.NoError(t, err, "Failed to create test product")

	err = tf.StartApp("-d", workspace)
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.OutputContainsPlain("Catalog loaded. 3 products.", 5*time.Second), "All products should load")

	// Search stays active after submit; n/N walk the matches
	tf.SendKeys(KeySearch)
	require.True(t, tf.OutputContainsPlain("Search: ", 5*time.Second), "Search prompt should open")

	tf.TypeText("red")
	require.True(t, tf.OutputContainsPlain("Red Rice · Red Chili Powder", 5*time.Second), "Matched names should appear in the suggestion row while typing")
	tf.SendEnter()

	tf.SendKeys("n")
	require.True(t, tf.OutputContainsPlain("Match 2 of 2", 5*time.Second), "n should move to the second match")

	tf.SendKeys("n")
	require.True(t, tf.OutputContainsPlain("Match 1 of 2", 5*time.Second), "n should wrap back to the first match")

	tf.Quit()
}

func TestSearchWithoutMatches(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	_, err = tf.CreateTestProduct("Turmeric Powder", WithCategory("Spices"))
	require.NoError(t, err, "Failed to create test product")

	err = tf.StartApp("-d", workspace)
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Turmeric Powder"), "Product should be listed")

	tf.SendKeys(KeySearch)
	require.True(t, tf.OutputContainsPlain("Search: ", 5*time.Second), "Search prompt should open")

	tf.TypeText("zzz")
	tf.SendEnter()
	require.True(t, tf.OutputContainsPlain(`No matches for "zzz"`, 5*time.Second), "Status should report no matches")

	tf.Quit()
}
