//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStartupShowsCatalog(t *testing.T) {
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
	require.True(t, tf.SeePlain("shopfront"), "Should show shopfront title")

	require.True(t, tf.OutputContainsPlain("Catalog loaded. 3 products.", 5*time.Second), "Load status should report the product count")
	require.True(t, tf.OutputContainsPlain("Bath (2)", 5*time.Second), "Bath header should show its product count")
	require.True(t, tf.OutputContainsPlain("Dairy (1)", 5*time.Second), "Dairy header should show its product count")
	require.True(t, tf.OutputContainsPlain("Lavender Soap", 5*time.Second), "Products should be listed under their categories")
	require.True(t, tf.OutputContainsPlain("Charcoal Soap", 5*time.Second), "Products should be listed under their categories")
	require.True(t, tf.OutputContainsPlain("₹45.00", 5*time.Second), "Prices should render in the configured currency")

	if t.Failed() {
		tf.DumpTailOnFail(t, "startup-failure", 4096)
	}
	tf.Quit()
}

func TestStartupEmptyCatalog(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartApp("-d", workspace)
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.OutputContainsPlain("No products found. Press r to reload.", 5*time.Second), "Empty catalog should show the placeholder")

	tf.Quit()
}

func TestUncategorizedProductsGetFallbackHeader(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	_, err = tf.CreateTestProduct("Mystery Box", WithCategory(""))
	require.NoError(t, err, "Failed to create test product")

	err = tf.StartApp("-d", workspace)
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.OutputContainsPlain("Uncategorized (1)", 5*time.Second), "Blank categories should fall back to Uncategorized")
	require.True(t, tf.OutputContainsPlain("Mystery Box", 5*time.Second), "Product should still be listed")

	tf.Quit()
}
