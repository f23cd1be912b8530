package scope

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestButtons(t *testing.T) {
	buttons := DefaultViewport().Buttons("a", "b", "c", "d")
	require.Len(t, buttons, 4)

	for i, b := range buttons {
		require.Equal(t, 400, b.Rect.Max.X, "button %d", i)
		require.Equal(t, 20+28*i, b.Rect.Min.Y, "button %d", i)
	}
	require.Equal(t, "c", buttons[2].Label)

	require.Equal(t, 0, HitButton(buttons, 300, 25))
	require.Equal(t, 3, HitButton(buttons, 399, 104))
	require.Equal(t, -1, HitButton(buttons, 100, 25))
	require.Equal(t, -1, HitButton(buttons, 300, 46))
}
