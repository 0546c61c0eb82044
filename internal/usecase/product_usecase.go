package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"feriadeofertas/internal/domain/entity"
	"feriadeofertas/internal/domain/repository"
	"feriadeofertas/internal/domain/service"
	"feriadeofertas/pkg/errors"
	"feriadeofertas/pkg/logger"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
	shopRepo    repository.ShopRepository
	storage     service.ObjectStorage
	log         *logger.Logger
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	shopRepo repository.ShopRepository,
	storage service.ObjectStorage,
	log *logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		shopRepo:    shopRepo,
		storage:     storage,
		log:         log,
	}
}

type ProductInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Condition   string   `json:"condition"`
	Images      []string `json:"images"`
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, ownerID string, input ProductInput) (*entity.Product, error) {
	shop, err := uc.shopRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.BadRequest("No tienes una tienda asociada", err)
	}

	if len(input.Images) == 0 {
		return nil, errors.BadRequest("Debes subir al menos una imagen del producto", nil)
	}
	if input.Price < 0 {
		return nil, errors.BadRequest("El precio no puede ser negativo", nil)
	}
	if input.Condition != "" && input.Condition != entity.ProductConditionNew && input.Condition != entity.ProductConditionUsed {
		return nil, errors.BadRequest("Invalid condition", nil)
	}

	product := &entity.Product{
		ShopID:      shop.ID,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Condition:   input.Condition,
		Images:      input.Images,
		Status:      entity.ProductStatusAvailable,
	}
	product.Normalize()

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	uc.log.Info("product %s created in shop %s", product.ID, shop.ID)

	return product, nil
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, ownerID, id string, input ProductInput) (*entity.Product, error) {
	product, err := uc.getOwnedProduct(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if input.Price < 0 {
		return nil, errors.BadRequest("El precio no puede ser negativo", nil)
	}
	if input.Condition != "" && input.Condition != entity.ProductConditionNew && input.Condition != entity.ProductConditionUsed {
		return nil, errors.BadRequest("Invalid condition", nil)
	}

	product.Title = input.Title
	product.Description = input.Description
	product.Price = input.Price
	if input.Condition != "" {
		product.Condition = input.Condition
	}
	// Existing images stay when the request carries none.
	if len(input.Images) > 0 {
		product.Images = input.Images
		product.LegacyImageURL = ""
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes the record permanently. Uploaded objects stay behind;
// orphaned storage is an accepted cost of not proxying file bytes.
func (uc *ProductUseCase) DeleteProduct(ctx context.Context, ownerID, id string) error {
	if _, err := uc.getOwnedProduct(ctx, ownerID, id); err != nil {
		return err
	}

	return uc.productRepo.Delete(ctx, id)
}

func (uc *ProductUseCase) MarkSold(ctx context.Context, ownerID, id, buyerInfo string) (*entity.Product, error) {
	product, err := uc.getOwnedProduct(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := uc.productRepo.UpdateStatus(ctx, id, entity.ProductStatusSold, buyerInfo, &now); err != nil {
		return nil, err
	}

	product.Status = entity.ProductStatusSold
	product.BuyerInfo = buyerInfo
	product.SoldAt = &now
	uc.log.Info("product %s marked sold", id)

	return product, nil
}

func (uc *ProductUseCase) MarkAvailable(ctx context.Context, ownerID, id string) (*entity.Product, error) {
	product, err := uc.getOwnedProduct(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := uc.productRepo.UpdateStatus(ctx, id, entity.ProductStatusAvailable, "", nil); err != nil {
		return nil, err
	}

	product.Status = entity.ProductStatusAvailable
	product.BuyerInfo = ""
	product.SoldAt = nil

	return product, nil
}

// ListShopProducts returns a shop's catalog as the viewer is allowed to see
// it: the owner gets every status with sold entries sinking to the bottom,
// everyone else never sees sold or inactive items. Display URLs are resolved
// for every image, order preserved.
func (uc *ProductUseCase) ListShopProducts(ctx context.Context, shopID, viewerID string) ([]*entity.Product, error) {
	shop, err := uc.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	isOwner := viewerID != "" && viewerID == shop.OwnerID

	products, err := uc.productRepo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	if !isOwner {
		visible := products[:0]
		for _, p := range products {
			if p.Status == entity.ProductStatusSold || p.Status == entity.ProductStatusInactive {
				continue
			}
			visible = append(visible, p)
		}
		products = visible
	} else {
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Status != entity.ProductStatusSold &&
				products[j].Status == entity.ProductStatusSold
		})
	}

	uc.resolveImageURLs(ctx, products)

	return products, nil
}

// resolveImageURLs fills ImageURLs for each product, one goroutine per
// product. Resolution failures leave an empty slot rather than failing the
// whole listing.
func (uc *ProductUseCase) resolveImageURLs(ctx context.Context, products []*entity.Product) {
	var wg sync.WaitGroup
	for _, product := range products {
		wg.Add(1)
		go func(p *entity.Product) {
			defer wg.Done()

			p.ImageURLs = make([]string, len(p.Images))
			for i, image := range p.Images {
				url, err := uc.storage.ResolveURL(ctx, image)
				if err != nil {
					uc.log.Warn("failed to resolve image %s for product %s: %v", image, p.ID, err)
					continue
				}
				p.ImageURLs[i] = url
			}
		}(product)
	}
	wg.Wait()
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.resolveImageURLs(ctx, []*entity.Product{product})

	return product, nil
}

func (uc *ProductUseCase) getOwnedProduct(ctx context.Context, ownerID, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	shop, err := uc.shopRepo.GetByOwner(ctx, ownerID)
	if err != nil || product.ShopID != shop.ID {
		return nil, errors.Forbidden("You don't have permission to manage this product", nil)
	}

	return product, nil
}
