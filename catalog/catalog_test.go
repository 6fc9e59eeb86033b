package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkout-service/models"
)

func TestAddAssignsSequentialIDs(t *testing.T) {
	cat := New()

	cheese := &models.Product{Name: "Cheese", Price: 100, Quantity: 10}
	tv := &models.Product{Name: "TV", Price: 5000, Quantity: 5, Weight: 15}

	require.NoError(t, cat.Add(cheese))
	require.NoError(t, cat.Add(tv))

	assert.Equal(t, int32(1), cheese.ProductID)
	assert.Equal(t, int32(2), tv.ProductID)

	got, ok := cat.Get(2)
	require.True(t, ok)
	assert.Equal(t, "TV", got.Name)

	_, ok = cat.Get(99)
	assert.False(t, ok)
}

func TestAddValidation(t *testing.T) {
	cat := New()

	tests := []struct {
		name    string
		product *models.Product
	}{
		{"nil product", nil},
		{"missing name", &models.Product{Price: 10}},
		{"negative price", &models.Product{Name: "Cheese", Price: -1}},
		{"negative stock", &models.Product{Name: "Cheese", Quantity: -1}},
		{"negative weight", &models.Product{Name: "Cheese", Weight: -0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cat.Add(tt.product)
			var invalid *models.InvalidArgumentError
			assert.ErrorAs(t, err, &invalid)
		})
	}
	assert.Empty(t, cat.List())
}

func TestListReturnsProductsInIDOrder(t *testing.T) {
	cat := New()
	for _, name := range []string{"Cheese", "TV", "Milk"} {
		require.NoError(t, cat.Add(&models.Product{Name: name, Price: 1, Quantity: 1}))
	}

	list := cat.List()
	require.Len(t, list, 3)
	assert.Equal(t, "Cheese", list[0].Name)
	assert.Equal(t, "TV", list[1].Name)
	assert.Equal(t, "Milk", list[2].Name)
}
