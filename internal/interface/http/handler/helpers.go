package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/http/middleware"
	"github.com/ignatzorin/campus-lostfound/internal/interface/http/response"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/pagination"
	"github.com/ignatzorin/campus-lostfound/internal/validation"
)

// requester достаёт пользователя из контекста; при отсутствии сразу отвечает 401.
func requester(c *gin.Context) (entity.Requester, bool) {
	r, ok := middleware.CurrentRequester(c)
	if !ok {
		response.Unauthorized(c, "требуется авторизация")
	}
	return r, ok
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.BadRequest(c, "параметр "+name+" должен быть валидным UUID")
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON разбирает тело запроса и проверяет его по тегам validate.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, "некорректные данные запроса")
		return false
	}
	if err := validation.Struct(req); err != nil {
		response.Error(c, err)
		return false
	}
	return true
}

func parseIntQuery(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func pageParams(c *gin.Context) pagination.Params {
	return pagination.Params{
		Page:  parseIntQuery(c, "page", 1),
		Limit: parseIntQuery(c, "limit", 0),
	}
}

func paginated[T any, R any](c *gin.Context, page pagination.Page[T], convert func([]T) []R) {
	response.Paginated(c, convert(page.Items), response.Pagination{
		Page:  page.Page,
		Limit: page.Limit,
		Total: page.Total,
		Pages: page.Pages(),
	})
}
