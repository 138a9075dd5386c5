package prestashop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelAccessors(t *testing.T) {
	m := NewModel(Attributes{
		"id":       "42",
		"name":     "Hummingbird Mug",
		"price":    "12.90",
		"active":   "1",
		"quantity": "300",
		"ean13":    "",
	})

	assert.Equal(t, 42, m.ID())
	assert.Equal(t, "Hummingbird Mug", m.Name())
	assert.Equal(t, "12.90", m.Attr("price"))
	assert.Equal(t, 12.9, m.Float("price"))
	assert.Equal(t, 300, m.Int("quantity"))
	assert.True(t, m.Bool("active"))
	assert.False(t, m.Empty())

	t.Run("presence", func(t *testing.T) {
		assert.True(t, m.Has("ean13"), "empty values still count as present")
		assert.False(t, m.Has("reference"))
	})

	t.Run("absent attributes read as zero values", func(t *testing.T) {
		assert.Equal(t, "", m.Attr("reference"))
		assert.Equal(t, 0, m.Int("reference"))
		assert.Equal(t, 0.0, m.Float("reference"))
		assert.False(t, m.Bool("reference"))
	})
}

func TestModelKeys(t *testing.T) {
	m := NewModel(Attributes{"b": "2", "a": "1", "c": "3"})
	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
}

func TestModelAttrsReturnsCopy(t *testing.T) {
	m := NewModel(Attributes{"id": "1"})

	attrs := m.Attrs()
	attrs["id"] = "99"
	attrs["injected"] = "x"

	assert.Equal(t, 1, m.ID())
	assert.False(t, m.Has("injected"))
}

func TestModelEmpty(t *testing.T) {
	assert.True(t, NewModel(nil).Empty())
	assert.True(t, NewModel(Attributes{}).Empty())
	assert.False(t, NewModel(Attributes{"id": "1"}).Empty())
}

func TestModelDetached(t *testing.T) {
	m := NewModel(Attributes{"id": "1"})
	assert.Nil(t, m.Resource())
}
