//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestQuantityEntryAndAdjust(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	_, err = tf.CreateTestProduct("Basmati Rice", WithCategory("Pantry"), WithUnit("5 kg"))
	require.NoError(t, err, "Failed to create test product")

	err = tf.StartApp("-d", workspace)
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Basmati Rice"), "Product should be listed")

	// e on a product opens the quantity prompt, pre-filled with the
	// current quantity; clear that before typing
	tf.Down()
	tf.SendKeys("e")
	require.True(t, tf.OutputContainsPlain("Quantity: ", 5*time.Second), "Quantity prompt should open")

	tf.SendKeys(KeyBackspace)
	tf.SendKeys(KeyBackspace)
	tf.TypeText("5")
	tf.SendEnter()
	require.True(t, tf.OutputContainsPlain("Quantity set to 5", 5*time.Second), "Entered quantity should apply")

	// + nudges the applied quantity
	tf.SendKeys("+")
	require.True(t, tf.OutputContainsPlain("Quantity: 6", 5*time.Second), "+ should bump the quantity")
	tf.SendKeys("+")
	require.True(t, tf.OutputContainsPlain("Quantity: 7", 5*time.Second), "+ should bump the quantity again")

	tf.Quit()
}

func TestQuantityClampedToBounds(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	_, err = tf.CreateTestProduct("Saffron Tin", WithCategory("Spices"), WithQuantityBounds(1, 3))
	require.NoError(t, err, "Failed to create test product")

	err = tf.StartApp("-d", workspace)
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Saffron Tin"), "Product should be listed")

	tf.Down()
	tf.SendKeys("e")
	require.True(t, tf.OutputContainsPlain("Quantity: ", 5*time.Second), "Quantity prompt should open")

	tf.SendKeys(KeyBackspace)
	tf.SendKeys(KeyBackspace)
	tf.TypeText("9")
	tf.SendEnter()
	require.True(t, tf.OutputContainsPlain("Quantity adjusted to 3 (allowed range)", 5*time.Second), "Out-of-range quantities should clamp to the maximum")

	tf.Quit()
}

func TestQuantityEmptyInputRejected(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	_, err = tf.CreateTestProduct("Jaggery Block")
	require.NoError(t, err, "Failed to create test product")

	err = tf.StartApp("-d", workspace)
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Jaggery Block"), "Product should be listed")

	tf.Down()
	tf.SendKeys("e")
	require.True(t, tf.OutputContainsPlain("Quantity: ", 5*time.Second), "Quantity prompt should open")

	// Letters are swallowed by the quantity prompt, so submitting after
	// clearing leaves nothing to parse
	tf.SendKeys(KeyBackspace)
	tf.SendKeys(KeyBackspace)
	tf.SendEnter()
	require.True(t, tf.OutputContainsPlain(`Invalid quantity ""`, 5*time.Second), "Empty input should be rejected")

	tf.Quit()
}
