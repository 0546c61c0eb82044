package handler

import (
	"github.com/labstack/echo/v4"

	"feriadeofertas/internal/usecase"
	"feriadeofertas/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// Me bootstraps the profile on first login and returns it. Clients call it
// again after creating a shop to pick up the fresh shopId.
func (h *AuthHandler) Me(c echo.Context) error {
	uid := c.Get("uid").(string)

	profile, err := h.authUseCase.EnsureProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}
