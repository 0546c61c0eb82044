package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"feriadeofertas/internal/domain/entity"
	"feriadeofertas/pkg/errors"
	"feriadeofertas/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New("test")
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) linkShop(userID, shopID string) error {
	user, ok := r.users[userID]
	if !ok {
		return errors.NotFound("User", nil)
	}
	user.ShopID = shopID
	return nil
}

type fakeShopRepo struct {
	shops    map[string]*entity.Shop
	users    *fakeUserRepo
	writeErr error
	ownerErr error
}

func newFakeShopRepo(users *fakeUserRepo) *fakeShopRepo {
	return &fakeShopRepo{shops: map[string]*entity.Shop{}, users: users}
}

func (r *fakeShopRepo) CreateWithOwnerLink(ctx context.Context, shop *entity.Shop) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	if _, err := r.users.GetByID(ctx, shop.OwnerID); err != nil {
		return err
	}
	copied := *shop
	r.shops[shop.ID] = &copied
	return r.users.linkShop(shop.OwnerID, shop.ID)
}

func (r *fakeShopRepo) GetByID(ctx context.Context, id string) (*entity.Shop, error) {
	shop, ok := r.shops[id]
	if !ok {
		return nil, errors.NotFound("Shop", nil)
	}
	copied := *shop
	return &copied, nil
}

func (r *fakeShopRepo) GetByOwner(ctx context.Context, ownerID string) (*entity.Shop, error) {
	if r.ownerErr != nil {
		return nil, r.ownerErr
	}
	for _, shop := range r.shops {
		if shop.OwnerID == ownerID {
			copied := *shop
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Shop", nil)
}

func (r *fakeShopRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	shop, ok := r.shops[id]
	if !ok {
		return errors.NotFound("Shop", nil)
	}
	if theme, ok := fields["theme"].(string); ok {
		shop.Theme = theme
	}
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
	order    []string
	seq      int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		r.seq++
		product.ID = fmt.Sprintf("p%d", r.seq)
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	copied := *product
	r.products[product.ID] = &copied
	r.order = append(r.order, product.ID)
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	copied := *product
	return &copied, nil
}

func (r *fakeProductRepo) ListByShop(ctx context.Context, shopID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range r.order {
		product, ok := r.products[id]
		if !ok || product.ShopID != shopID {
			continue
		}
		copied := *product
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return errors.NotFound("Product", nil)
	}
	product.UpdatedAt = time.Now()
	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *fakeProductRepo) UpdateStatus(ctx context.Context, id, status, buyerInfo string, soldAt *time.Time) error {
	product, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	product.Status = status
	product.BuyerInfo = buyerInfo
	product.SoldAt = soldAt
	product.UpdatedAt = time.Now()
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	delete(r.products, id)
	return nil
}

type fakeOrderRepo struct {
	orders []*entity.Order
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = fmt.Sprintf("o%d", len(r.orders)+1)
	}
	order.CreatedAt = time.Now()
	copied := *order
	r.orders = append(r.orders, &copied)
	return nil
}

type fakeStorage struct {
	publicDomain string
}

func (s *fakeStorage) MintKey(filename string) string {
	return "minted-key"
}

func (s *fakeStorage) PresignUpload(ctx context.Context, key, contentType string) (string, time.Time, error) {
	return "https://storage.test/put/" + key, time.Now().Add(10 * time.Minute), nil
}

func (s *fakeStorage) ResolveURL(ctx context.Context, pathOrURL string) (string, error) {
	if strings.HasPrefix(pathOrURL, "http") {
		return pathOrURL, nil
	}
	return s.publicDomain + "/" + pathOrURL, nil
}

type fakeAuthProvider struct {
	identities map[string]*entity.User
}

func (p *fakeAuthProvider) VerifyToken(ctx context.Context, token string) (string, error) {
	return token, nil
}

func (p *fakeAuthProvider) GetIdentity(ctx context.Context, uid string) (*entity.User, error) {
	identity, ok := p.identities[uid]
	if !ok {
		return nil, fmt.Errorf("unknown uid %s", uid)
	}
	copied := *identity
	return &copied, nil
}
