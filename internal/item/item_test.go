package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	it := New("Beta Two")
	assert.Equal(t, "Beta Two", it.Name)
	assert.Equal(t, "Beta_Two", it.Key)
	assert.False(t, it.HasContent)

	withBody := it.WithContent("body")
	assert.True(t, withBody.HasContent)
	assert.Equal(t, "body", withBody.Content)
	assert.False(t, it.HasContent, "WithContent must not modify the receiver")
}

func TestCollection_Lifecycle(t *testing.T) {
	c := NewCollection()
	assert.Equal(t, 0, c.Len())
	assert.False(t, c.Frozen())

	require.NoError(t, c.Append(New("one")))
	require.NoError(t, c.Append(New("two")))
	c.Freeze()

	assert.True(t, c.Frozen())
	assert.ErrorIs(t, c.Append(New("three")), ErrFrozen)
	assert.Equal(t, 2, c.Len())

	items := c.Items()
	assert.Equal(t, "one", items[0].Name)
	assert.Equal(t, "two", items[1].Name)

	items[0].Name = "changed"
	assert.Equal(t, "one", c.Items()[0].Name, "Items must return a copy")
}

func TestCollection_Get(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Append(New("Beta Two")))
	c.Freeze()

	it, err := c.Get("Beta Two")
	require.NoError(t, err)
	assert.Equal(t, "Beta_Two", it.Key)

	it, err = c.Get("Beta_Two")
	require.NoError(t, err, "lookup by key")
	assert.Equal(t, "Beta Two", it.Name)

	_, err = c.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
