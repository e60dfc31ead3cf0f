package handler

import (
	"net/http"
	"time"

	"gelato-pos/internal/config"
	"gelato-pos/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthHandler signs in the shop's single manager account, configured in
// config.yaml as a username plus pbkdf2 password hash.
type AuthHandler struct {
	Username     string
	PasswordHash string
	JWTSecret    string
	Issuer       string
	ExpireHours  int
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		Username:     cfg.Auth.Username,
		PasswordHash: cfg.Auth.PasswordHash,
		JWTSecret:    cfg.JWT.Secret,
		Issuer:       cfg.JWT.Issuer,
		ExpireHours:  cfg.JWT.ExpireHours,
	}
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Parâmetros inválidos")
		return
	}

	if req.Username != h.Username || !util.CheckPassword(req.Password, h.PasswordHash) {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Usuário ou senha incorretos")
		return
	}

	ttl := time.Duration(h.ExpireHours) * time.Hour
	token, err := util.GenerateToken(h.JWTSecret, h.Issuer, req.Username, ttl)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Falha ao gerar token")
		return
	}

	util.Success(c, util.Response{
		"token":      token,
		"expires_in": int(ttl.Seconds()),
	})
}
