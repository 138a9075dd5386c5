package prestashop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionIDs(t *testing.T) {
	t.Run("document order", func(t *testing.T) {
		body := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<prestashop xmlns:xlink="http://www.w3.org/1999/xlink">
<products>
<product id="3" xlink:href="http://shop.example.com/api/products/3"/>
<product id="1"/>
<product id="2"/>
</products>
</prestashop>`)

		ids, err := collectionIDs(body, "products", "product")
		require.NoError(t, err)
		assert.Equal(t, []string{"3", "1", "2"}, ids)
	})

	t.Run("empty collection", func(t *testing.T) {
		body := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<prestashop><products/></prestashop>`)

		ids, err := collectionIDs(body, "products", "product")
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("missing container", func(t *testing.T) {
		body := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<prestashop><errors/></prestashop>`)

		_, err := collectionIDs(body, "products", "product")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingNode)
	})

	t.Run("identifier from text when attribute missing", func(t *testing.T) {
		body := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<prestashop>
<products>
<product>4</product>
<product id="5"/>
</products>
</prestashop>`)

		ids, err := collectionIDs(body, "products", "product")
		require.NoError(t, err)
		assert.Equal(t, []string{"4", "5"}, ids)
	})

	t.Run("foreign children are ignored", func(t *testing.T) {
		body := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<prestashop>
<products>
<product id="1"/>
<pagination total="1"/>
</products>
</prestashop>`)

		ids, err := collectionIDs(body, "products", "product")
		require.NoError(t, err)
		assert.Equal(t, []string{"1"}, ids)
	})
}

func TestNodeAttributes(t *testing.T) {
	body := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<prestashop xmlns:xlink="http://www.w3.org/1999/xlink">
<stock_available>
<id>71</id>
<id_product xlink:href="http://shop.example.com/api/products/7">7</id_product>
<quantity>300</quantity>
<depends_on_stock>0</depends_on_stock>
</stock_available>
</prestashop>`)

	attrs, err := nodeAttributes(body, "stock_available", 1)
	require.NoError(t, err)
	assert.Equal(t, "71", attrs["id"])
	assert.Equal(t, "7", attrs["id_product"])
	assert.Equal(t, "300", attrs["quantity"])
	assert.Equal(t, "0", attrs["depends_on_stock"])

	t.Run("missing node", func(t *testing.T) {
		_, err := nodeAttributes([]byte(`<prestashop/>`), "stock_available", 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingNode)
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := nodeAttributes([]byte(`<prestashop><stock_available>`), "stock_available", 1)
		require.Error(t, err)
	})
}

func TestNodeAttributesMultilingual(t *testing.T) {
	body := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<prestashop>
<product>
<id>9</id>
<name>
<language id="1"><![CDATA[Mug]]></language>
<language id="2"><![CDATA[Tasse]]></language>
</name>
<description>
<language id="1"><![CDATA[A mug.]]></language>
<language id="2"><![CDATA[Une tasse.]]></language>
</description>
</product>
</prestashop>`)

	t.Run("first language", func(t *testing.T) {
		attrs, err := nodeAttributes(body, "product", 1)
		require.NoError(t, err)
		assert.Equal(t, "Mug", attrs["name"])
		assert.Equal(t, "A mug.", attrs["description"])
	})

	t.Run("second language", func(t *testing.T) {
		attrs, err := nodeAttributes(body, "product", 2)
		require.NoError(t, err)
		assert.Equal(t, "Tasse", attrs["name"])
		assert.Equal(t, "Une tasse.", attrs["description"])
	})

	t.Run("unmapped language leaves the field out", func(t *testing.T) {
		attrs, err := nodeAttributes(body, "product", 9)
		require.NoError(t, err)
		_, ok := attrs["name"]
		assert.False(t, ok)
		assert.Equal(t, "9", attrs["id"])
	})
}

func TestAttributeSets(t *testing.T) {
	body := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<prestashop xmlns:xlink="http://www.w3.org/1999/xlink">
<images>
<image id="7"><id_product>1</id_product><position>1</position></image>
<image id="8"><id_product>2</id_product><position>1</position></image>
</images>
</prestashop>`)

	sets, err := attributeSets(body, "image", 1)
	require.NoError(t, err)
	require.Len(t, sets, 2)

	assert.Equal(t, "7", sets[0]["id"])
	assert.Equal(t, "1", sets[0]["id_product"])
	assert.Equal(t, "8", sets[1]["id"])
	assert.Equal(t, "2", sets[1]["id_product"])

	t.Run("empty collection", func(t *testing.T) {
		sets, err := attributeSets([]byte(`<prestashop><images/></prestashop>`), "image", 1)
		require.NoError(t, err)
		assert.Empty(t, sets)
	})
}
