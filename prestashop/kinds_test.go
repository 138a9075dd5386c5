package prestashop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name      string
		apiName   string
		nodeType  string
		root      string
		modelName string
	}{
		{"Products", "products", "product", "/products", "Product"},
		{"Manufacturers", "manufacturers", "manufacturer", "/manufacturers", "Manufacturer"},
		{"Combinations", "combinations", "combination", "/combinations", "Combination"},
		{"StockAvailables", "stock_availables", "stock_available", "/stock_availables", "StockAvailable"},
		{"Categories", "categories", "category", "/categories", "Category"},
		{"Images", "images", "image", "/images", "Image"},
		{"ProductOptionValues", "product_option_values", "product_option_value", "/product_option_values", "ProductOptionValue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := describe(tt.name)
			assert.Equal(t, tt.name, d.Name)
			assert.Equal(t, tt.apiName, d.APIName)
			assert.Equal(t, tt.nodeType, d.NodeType)
			assert.Equal(t, tt.root, d.Root)
			assert.Equal(t, tt.modelName, d.ModelName)
		})
	}
}

func TestRegisteredKinds(t *testing.T) {
	expected := []string{
		"categories",
		"combinations",
		"images",
		"manufacturers",
		"product_option_values",
		"products",
		"stock_availables",
	}

	descriptors := Kinds()
	require.Len(t, descriptors, len(expected))
	for i, d := range descriptors {
		assert.Equal(t, expected[i], d.APIName)
	}

	t.Run("product option values carry their ordering", func(t *testing.T) {
		d, ok := kinds["product_option_values"]
		require.True(t, ok)
		assert.NotNil(t, d.Less)
		assert.Nil(t, d.Filter)
	})

	t.Run("defaults carry no ordering", func(t *testing.T) {
		d, ok := kinds["products"]
		require.True(t, ok)
		assert.Nil(t, d.Less)
	})
}

func TestAscendingBy(t *testing.T) {
	less := AscendingBy("position")

	t.Run("numeric values compare numerically", func(t *testing.T) {
		a := NewModel(Attributes{"position": "2"})
		b := NewModel(Attributes{"position": "10"})
		assert.True(t, less(a, b))
		assert.False(t, less(b, a))
	})

	t.Run("non-numeric values compare lexically", func(t *testing.T) {
		a := NewModel(Attributes{"position": "alpha"})
		b := NewModel(Attributes{"position": "beta"})
		assert.True(t, less(a, b))
		assert.False(t, less(b, a))
	})

	t.Run("descending reverses", func(t *testing.T) {
		desc := DescendingBy("position")
		a := NewModel(Attributes{"position": "2"})
		b := NewModel(Attributes{"position": "10"})
		assert.False(t, desc(a, b))
		assert.True(t, desc(b, a))
	})
}
