package middleware

import (
	"net/http"
	"strings"
	"time"

	"gelato-pos/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the manager JWT and stores the username in the
// context. The token may arrive as a bearer header, a ?token= query (for
// download links) or the gelato_token cookie.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}

		if tokenStr == "" {
			tokenStr = c.Query("token")
		}

		if tokenStr == "" {
			if cookie, err := c.Cookie("gelato_token"); err == nil {
				tokenStr = cookie
			}
		}

		if tokenStr == "" {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Não autenticado")
			c.Abort()
			return
		}

		claims, err := util.ParseToken(jwtSecret, tokenStr)
		if err != nil || claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Sessão expirada, faça login novamente")
			c.Abort()
			return
		}

		c.Set("currentUser", claims.Username)
		c.Next()
	}
}
