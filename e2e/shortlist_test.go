//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestShortlistCategoryAndClear(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	_, err = tf.CreateTestProduct("Lavender Soap", WithCategory("Bath"), WithPrice(4500))
	require.NoError(t, err, "Failed to create test product")
	_, err = tf.CreateTestProduct("Charcoal Soap", WithCategory("Bath"), WithPrice(5200))
	require.NoError(t, err, "Failed to create test product")
	_, err = tf.CreateTestProduct("Ghee Jar", WithCategory("Dairy"), WithPrice(64900))
	require.NoError(t, err, "Failed to create test product")

	err = tf.StartApp("-d", workspace)
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Lavender Soap"), "Products should be listed")

	// Space on the Bath header shortlists every product in it
	tf.Select()
	require.True(t, tf.OutputContainsPlain("Shortlist: 2 items, ₹97.00", 5*time.Second), "Category shortlist should sum both products")
	require.True(t, tf.OutputContainsPlain("[x]", 5*time.Second), "Shortlisted tiles should show their marker")

	// x asks for confirmation before clearing
	tf.SendKeys("x")
	require.True(t, tf.OutputContainsPlain("Clear shortlist (2 items)? (y/n): ", 5*time.Second), "Clearing should ask for confirmation")

	tf.SendKeys("y")
	require.True(t, tf.OutputContainsPlain("Shortlist empty", 5*time.Second), "Confirming should clear the shortlist")

	tf.Quit()
}

func TestShortlistToggleSingleProduct(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	_, err = tf.CreateTestProduct("Lavender Soap", WithCategory("Bath"), WithPrice(4500))
	require.NoError(t, err, "Failed to create test product")

	err = tf.StartApp("-d", workspace)
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Lavender Soap"), "Product should be listed")

	// Move onto the product and toggle it on, then off
	tf.Down()
	tf.Select()
	require.True(t, tf.OutputContainsPlain("Shortlist: 1 items, ₹45.00", 5*time.Second), "Space should shortlist the product under the cursor")

	tf.Select()
	require.True(t, tf.OutputContainsPlain("Shortlist empty", 5*time.Second), "Space again should remove it")

	tf.Quit()
}

func TestShortlistAllToggle(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	_, err = tf.CreateTestProduct("Lavender Soap", WithCategory("Bath"), WithPrice(4500))
	require.NoError(t, err, "Failed to create test product")
	_, err = tf.CreateTestProduct("Charcoal Soap", WithCategory("Bath"), WithPrice(5200))
	require.NoError(t, err, "Failed to create test product")
	_, err = tf.CreateTestProduct("Ghee Jar", WithCategory("Dairy"), WithPrice(64900))
	require.NoError(t, err, "Failed to create test product")

	err = tf.StartApp("-d", workspace)
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.OutputContainsPlain("Catalog loaded. 3 products.", 5*time.Second), "All products should load")

	// a with nothing shortlisted selects everything
	tf.SendKeys("a")
	require.True(t, tf.OutputContainsPlain("Shortlist: 3 items, ₹746.00", 5*time.Second), "a should shortlist the whole catalog")

	// a again clears it
	tf.SendKeys("a")
	require.True(t, tf.OutputContainsPlain("Shortlist empty", 5*time.Second), "a should clear a non-empty shortlist")

	tf.Quit()
}
