package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/campus-lostfound/internal/auth"
	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/repository"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/interface/http/response"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
)

// SeedHandler создаёт демонстрационных пользователей для локального запуска.
// Регистрация живёт вне сервиса, поэтому без сида в пустой базе некому выдать токен.
type SeedHandler struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
}

// NewSeedHandler создаёт новый seed handler.
func NewSeedHandler(users repository.UserRepository, tokens *auth.TokenManager) *SeedHandler {
	return &SeedHandler{users: users, tokens: tokens}
}

// SeedAccountInfo представляет информацию об аккаунте.
type SeedAccountInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Block       string `json:"block,omitempty"`
	AccessToken string `json:"access_token"`
}

// SeedResponse представляет ответ на запрос генерации данных.
type SeedResponse struct {
	Message  string            `json:"message"`
	Accounts []SeedAccountInfo `json:"accounts"`
}

type seedAccount struct {
	name       string
	email      string
	role       valueobject.Role
	block      string
	department string
}

var seedAccounts = []seedAccount{
	{name: "Asha Student", email: "asha@campus.test", role: valueobject.RoleStudent, block: "A", department: "CSE"},
	{name: "Ravi Student", email: "ravi@campus.test", role: valueobject.RoleStudent, block: "A", department: "ECE"},
	{name: "Meera Student", email: "meera@campus.test", role: valueobject.RoleStudent, block: "B", department: "MECH"},
	{name: "Front Office", email: "staff@campus.test", role: valueobject.RoleStaff, department: "Administration"},
	{name: "Campus Admin", email: "admin@campus.test", role: valueobject.RoleAdmin},
}

// Seed создаёт аккаунты и возвращает их access токены.
// POST /api/seed
func (h *SeedHandler) Seed(c *gin.Context) {
	accounts := make([]SeedAccountInfo, 0, len(seedAccounts))

	for _, a := range seedAccounts {
		user, err := entity.NewUser(a.name, a.email, a.role, a.block, a.department)
		if err != nil {
			response.Error(c, err)
			return
		}
		user.IsApproved = true

		if err := h.users.Create(c.Request.Context(), user); err != nil {
			if apperror.IsConflict(err) {
				continue
			}
			response.Error(c, err)
			return
		}

		token, err := h.tokens.GenerateAccess(user.ID, string(user.Role))
		if err != nil {
			response.Error(c, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось выпустить токен"))
			return
		}

		accounts = append(accounts, SeedAccountInfo{
			ID:          user.ID.String(),
			Name:        user.Name,
			Email:       user.Email,
			Role:        string(user.Role),
			Block:       user.Block,
			AccessToken: token,
		})
	}

	response.Created(c, SeedResponse{
		Message:  "демо-данные созданы",
		Accounts: accounts,
	})
}
