package usecase

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"feriadeofertas/internal/domain/entity"
	"feriadeofertas/internal/domain/repository"
	"feriadeofertas/pkg/errors"
	"feriadeofertas/pkg/logger"
)

type ShopUseCase struct {
	shopRepo repository.ShopRepository
	userRepo repository.UserRepository
	log      *logger.Logger
}

func NewShopUseCase(shopRepo repository.ShopRepository, userRepo repository.UserRepository, log *logger.Logger) *ShopUseCase {
	return &ShopUseCase{
		shopRepo: shopRepo,
		userRepo: userRepo,
		log:      log,
	}
}

type CreateShopInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Whatsapp    string `json:"whatsapp"`
	Location    string `json:"location"`
	Alias       string `json:"alias"`
	CBU         string `json:"cbu"`
}

func (uc *ShopUseCase) CreateShop(ctx context.Context, ownerID string, input CreateShopInput) (*entity.Shop, error) {
	// Character count, not bytes: accented names must measure the same as
	// their unaccented spelling.
	if nameLen := utf8.RuneCountInString(input.Name); nameLen < 4 || nameLen > 20 {
		return nil, errors.BadRequest("El nombre de la tienda debe tener entre 4 y 20 caracteres", nil)
	}

	if input.CBU != "" && !isDigits(input.CBU) {
		return nil, errors.BadRequest("El CBU/CVU solo puede contener números", nil)
	}
	if input.CBU != "" && len(input.CBU) != 22 {
		return nil, errors.BadRequest("El CBU/CVU debe tener exactamente 22 números", nil)
	}

	existing, err := uc.shopRepo.GetByOwner(ctx, ownerID)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	if existing != nil {
		return nil, errors.BadRequest("Ya tienes una tienda creada", nil)
	}

	shop := &entity.Shop{
		ID:          generateShopID(input.Name),
		OwnerID:     ownerID,
		Name:        input.Name,
		Description: input.Description,
		Whatsapp:    normalizePhone(input.Whatsapp),
		Location:    input.Location,
		Alias:       strings.ToUpper(input.Alias),
		CBU:         input.CBU,
		Theme:       entity.DefaultTheme,
		Active:      true,
	}

	if err := uc.shopRepo.CreateWithOwnerLink(ctx, shop); err != nil {
		return nil, err
	}
	uc.log.Info("shop %s created for owner %s", shop.ID, ownerID)

	return shop, nil
}

func (uc *ShopUseCase) GetShopByID(ctx context.Context, id string) (*entity.Shop, error) {
	shop, err := uc.shopRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	shop.Theme = entity.ResolveTheme(shop.Theme).Key

	return shop, nil
}

func (uc *ShopUseCase) GetShopByOwner(ctx context.Context, ownerID string) (*entity.Shop, error) {
	return uc.shopRepo.GetByOwner(ctx, ownerID)
}

// UpdateTheme is a partial update; the rest of the shop record is untouched.
func (uc *ShopUseCase) UpdateTheme(ctx context.Context, ownerID, theme string) (*entity.Shop, error) {
	if !entity.IsKnownTheme(theme) {
		return nil, errors.BadRequest("Unknown theme", nil)
	}

	shop, err := uc.shopRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if err := uc.shopRepo.UpdateFields(ctx, shop.ID, map[string]interface{}{"theme": theme}); err != nil {
		return nil, err
	}
	shop.Theme = theme

	return shop, nil
}

// generateShopID derives a shareable slug from the shop name plus a short
// random suffix to keep IDs unique across same-named shops.
func generateShopID(name string) string {
	folded := norm.NFD.String(strings.ToLower(name))

	var slug strings.Builder
	pendingDash := false
	for _, r := range folded {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining mark left over from NFD, drop it
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingDash && slug.Len() > 0 {
				slug.WriteByte('-')
			}
			pendingDash = false
			slug.WriteRune(r)
		default:
			pendingDash = true
		}
	}

	suffix := uuid.New().String()[:4]
	if slug.Len() == 0 {
		return suffix
	}
	return slug.String() + "-" + suffix
}

// normalizePhone strips everything except digits and "+" so stored numbers
// drop straight into wa.me links.
func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
