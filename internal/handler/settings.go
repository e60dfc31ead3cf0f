package handler

import (
	"errors"
	"net/http"

	"gelato-pos/internal/store"
	"gelato-pos/internal/util"

	"github.com/gin-gonic/gin"
)

// SettingsHandler exposes the singleton shop settings record.
type SettingsHandler struct {
	Store *store.Store
}

func NewSettingsHandler(s *store.Store) *SettingsHandler {
	return &SettingsHandler{Store: s}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	util.Success(c, util.Response{
		"settings": h.Store.Settings(),
	})
}

type updateSettingsReq struct {
	ShopName   *string `json:"shopName"`
	ThemeColor *string `json:"themeColor"`
	UserName   *string `json:"userName"`
	UserRole   *string `json:"userRole"`
}

// UpdateSettings applies a field-level edit; omitted fields stay untouched.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req updateSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Parâmetros inválidos")
		return
	}

	settings, err := h.Store.UpdateSettings(store.SettingsUpdate{
		ShopName:   req.ShopName,
		ThemeColor: req.ThemeColor,
		UserName:   req.UserName,
		UserRole:   req.UserRole,
	})
	switch {
	case errors.Is(err, store.ErrInvalidTheme):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Cor de tema desconhecida")
		return
	case err != nil:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Falha ao salvar ajustes")
		return
	}

	util.Success(c, util.Response{
		"settings": settings,
	})
}
