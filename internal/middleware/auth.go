package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/chateaupet/petshop-api/internal/config"
	"github.com/chateaupet/petshop-api/internal/models"
	"github.com/chateaupet/petshop-api/internal/session"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextTokenJTI = "tokenJTI"
)

func AuthMiddleware(cfg *config.Config, denylist session.Denylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {

			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		userID, ok := claims["sub"].(string)
		if !ok || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}
		role, _ := claims["role"].(string)
		jti, _ := claims["jti"].(string)

		if jti != "" && denylist != nil {
			revoked, err := denylist.IsRevoked(c.Request.Context(), jti)
			if err == nil && revoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session_revoked"})
				return
			}
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserRole, role)
		c.Set(ContextTokenJTI, jti)

		c.Next()
	}
}

// RequireAdmin é o guard das páginas de admin. Autenticado com papel
// errado não passa: a sessão é revogada antes do 403, como o signOut
// forçado que o painel fazia.
func RequireAdmin(denylist session.Denylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ContextUserRole)
		if role == models.RoleAdmin {
			c.Next()
			return
		}

		if jtiVal, ok := c.Get(ContextTokenJTI); ok && denylist != nil {
			if jti, _ := jtiVal.(string); jti != "" {
				_ = denylist.Revoke(c.Request.Context(), jti, 24*time.Hour)
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":   "admin_only",
			"message": "Acesso restrito a administradores.",
		})
	}
}
