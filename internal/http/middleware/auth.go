package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/auth"
	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/interface/http/response"
)

// Context ключи для gin.Context.
const (
	ContextUserIDKey = "userID"
	ContextRoleKey   = "role"
)

// AuthMiddleware проверяет JWT access токен.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c, "требуется авторизация")
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		userID, role, err := tokens.ParseAccess(raw)
		if err != nil || userID == uuid.Nil {
			response.Unauthorized(c, "токен невалиден")
			return
		}

		parsedRole, err := valueobject.NewRole(role)
		if err != nil {
			response.Unauthorized(c, "токен содержит неизвестную роль")
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Set(ContextRoleKey, parsedRole)
		c.Next()
	}
}

// RequireRole пропускает только пользователей с одной из ролей. Ставится после AuthMiddleware.
func RequireRole(roles ...valueobject.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		requester, ok := CurrentRequester(c)
		if !ok {
			response.Unauthorized(c, "требуется авторизация")
			return
		}
		for _, role := range roles {
			if requester.Role == role {
				c.Next()
				return
			}
		}
		response.Forbidden(c, "недостаточно прав")
	}
}

// CurrentRequester возвращает пользователя, прошедшего AuthMiddleware.
func CurrentRequester(c *gin.Context) (entity.Requester, bool) {
	userID, ok := c.Get(ContextUserIDKey)
	if !ok {
		return entity.Requester{}, false
	}
	id, ok := userID.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return entity.Requester{}, false
	}
	role, _ := c.Get(ContextRoleKey)
	r, _ := role.(valueobject.Role)
	return entity.Requester{UserID: id, Role: r}, true
}
