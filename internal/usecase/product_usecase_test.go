package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feriadeofertas/internal/domain/entity"
	"feriadeofertas/pkg/errors"
)

type productFixture struct {
	uc       *ProductUseCase
	products *fakeProductRepo
	shopID   string
}

func newProductFixture(t *testing.T) *productFixture {
	t.Helper()

	users := newFakeUserRepo()
	shops := newFakeShopRepo(users)
	users.Create(context.Background(), &entity.User{ID: "owner-1"})

	shop := &entity.Shop{ID: "modas-ana-ab12", OwnerID: "owner-1", Name: "Modas Ana"}
	require.NoError(t, shops.CreateWithOwnerLink(context.Background(), shop))

	products := newFakeProductRepo()
	uc := NewProductUseCase(products, shops, &fakeStorage{publicDomain: "https://cdn.test"}, testLogger())

	return &productFixture{uc: uc, products: products, shopID: shop.ID}
}

func TestCreateProductRequiresImage(t *testing.T) {
	f := newProductFixture(t)

	_, err := f.uc.CreateProduct(context.Background(), "owner-1", ProductInput{
		Title: "Campera",
		Price: 100,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCreateProductDefaults(t *testing.T) {
	f := newProductFixture(t)

	product, err := f.uc.CreateProduct(context.Background(), "owner-1", ProductInput{
		Title:  "Campera",
		Price:  100,
		Images: []string{"key-1.jpg"},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ProductStatusAvailable, product.Status)
	assert.Equal(t, entity.ProductConditionUsed, product.Condition)
	assert.Equal(t, f.shopID, product.ShopID)
	assert.Nil(t, product.SoldAt)
}

func TestCreateProductRejectsNegativePrice(t *testing.T) {
	f := newProductFixture(t)

	_, err := f.uc.CreateProduct(context.Background(), "owner-1", ProductInput{
		Title:  "Campera",
		Price:  -1,
		Images: []string{"key-1.jpg"},
	})
	require.Error(t, err)
}

func TestUpdateProductKeepsImagesWhenNoneSent(t *testing.T) {
	f := newProductFixture(t)

	created, err := f.uc.CreateProduct(context.Background(), "owner-1", ProductInput{
		Title:  "Campera",
		Price:  100,
		Images: []string{"key-1.jpg", "key-2.jpg"},
	})
	require.NoError(t, err)

	updated, err := f.uc.UpdateProduct(context.Background(), "owner-1", created.ID, ProductInput{
		Title: "Campera de cuero",
		Price: 150,
	})
	require.NoError(t, err)

	assert.Equal(t, "Campera de cuero", updated.Title)
	assert.Equal(t, []string{"key-1.jpg", "key-2.jpg"}, updated.Images)

	replaced, err := f.uc.UpdateProduct(context.Background(), "owner-1", created.ID, ProductInput{
		Title:  "Campera de cuero",
		Price:  150,
		Images: []string{"key-3.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"key-3.jpg"}, replaced.Images)
}

func TestUpdateProductForbiddenForStranger(t *testing.T) {
	f := newProductFixture(t)

	created, err := f.uc.CreateProduct(context.Background(), "owner-1", ProductInput{
		Title:  "Campera",
		Price:  100,
		Images: []string{"key-1.jpg"},
	})
	require.NoError(t, err)

	_, err = f.uc.UpdateProduct(context.Background(), "intruder", created.ID, ProductInput{Title: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestMarkSoldAndRevert(t *testing.T) {
	f := newProductFixture(t)

	created, err := f.uc.CreateProduct(context.Background(), "owner-1", ProductInput{
		Title:  "Campera",
		Price:  100,
		Images: []string{"key-1.jpg"},
	})
	require.NoError(t, err)

	sold, err := f.uc.MarkSold(context.Background(), "owner-1", created.ID, "Juan, seña 50%")
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusSold, sold.Status)
	assert.Equal(t, "Juan, seña 50%", sold.BuyerInfo)
	require.NotNil(t, sold.SoldAt)

	stored, err := f.products.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusSold, stored.Status)
	assert.NotNil(t, stored.SoldAt)

	reverted, err := f.uc.MarkAvailable(context.Background(), "owner-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusAvailable, reverted.Status)
	assert.Empty(t, reverted.BuyerInfo)
	assert.Nil(t, reverted.SoldAt)

	stored, err = f.products.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.SoldAt)
	assert.Empty(t, stored.BuyerInfo)
}

func TestListShopProductsVisibility(t *testing.T) {
	f := newProductFixture(t)
	ctx := context.Background()

	a, err := f.uc.CreateProduct(ctx, "owner-1", ProductInput{Title: "A", Price: 1, Images: []string{"a.jpg"}})
	require.NoError(t, err)
	b, err := f.uc.CreateProduct(ctx, "owner-1", ProductInput{Title: "B", Price: 2, Images: []string{"b.jpg"}})
	require.NoError(t, err)
	c, err := f.uc.CreateProduct(ctx, "owner-1", ProductInput{Title: "C", Price: 3, Images: []string{"c.jpg"}})
	require.NoError(t, err)

	_, err = f.uc.MarkSold(ctx, "owner-1", a.ID, "")
	require.NoError(t, err)

	// Owner sees everything, sold entries last, others in stable order.
	ownerList, err := f.uc.ListShopProducts(ctx, f.shopID, "owner-1")
	require.NoError(t, err)
	require.Len(t, ownerList, 3)
	assert.Equal(t, b.ID, ownerList[0].ID)
	assert.Equal(t, c.ID, ownerList[1].ID)
	assert.Equal(t, a.ID, ownerList[2].ID)

	// Public viewers never see sold products.
	publicList, err := f.uc.ListShopProducts(ctx, f.shopID, "")
	require.NoError(t, err)
	require.Len(t, publicList, 2)
	for _, p := range publicList {
		assert.NotEqual(t, entity.ProductStatusSold, p.Status)
	}
}

func TestListShopProductsResolvesAllImages(t *testing.T) {
	f := newProductFixture(t)
	ctx := context.Background()

	_, err := f.uc.CreateProduct(ctx, "owner-1", ProductInput{
		Title:  "Campera",
		Price:  100,
		Images: []string{"k1.jpg", "https://legacy.example.com/k2.jpg", "k3.jpg"},
	})
	require.NoError(t, err)

	list, err := f.uc.ListShopProducts(ctx, f.shopID, "owner-1")
	require.NoError(t, err)
	require.Len(t, list, 1)

	assert.Equal(t, []string{
		"https://cdn.test/k1.jpg",
		"https://legacy.example.com/k2.jpg",
		"https://cdn.test/k3.jpg",
	}, list[0].ImageURLs)
}

func TestListShopProductsNormalizesLegacyShape(t *testing.T) {
	f := newProductFixture(t)
	ctx := context.Background()

	legacy := &entity.Product{
		ShopID:         f.shopID,
		Title:          "Vieja publicación",
		LegacyImageURL: "https://legacy.example.com/old.jpg",
	}
	legacy.Normalize()
	require.NoError(t, f.products.Create(ctx, legacy))

	list, err := f.uc.ListShopProducts(ctx, f.shopID, "owner-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []string{"https://legacy.example.com/old.jpg"}, list[0].ImageURLs)
}

func TestDeleteProduct(t *testing.T) {
	f := newProductFixture(t)
	ctx := context.Background()

	created, err := f.uc.CreateProduct(ctx, "owner-1", ProductInput{
		Title:  "Campera",
		Price:  100,
		Images: []string{"k1.jpg"},
	})
	require.NoError(t, err)

	require.Error(t, f.uc.DeleteProduct(ctx, "intruder", created.ID))
	require.NoError(t, f.uc.DeleteProduct(ctx, "owner-1", created.ID))

	_, err = f.products.GetByID(ctx, created.ID)
	require.Error(t, err)
}
