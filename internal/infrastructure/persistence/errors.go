package persistence

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
)

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}

// notFoundOr превращает sql.ErrNoRows в доменную ошибку, остальное оборачивает.
func notFoundOr(err error, notFound *apperror.AppError, message string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	return apperror.Wrap(err, apperror.ErrCodeDatabaseError, message)
}

// checkAffected возвращает notFound, если запрос не затронул ни одной строки.
func checkAffected(result sql.Result, notFound *apperror.AppError) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось проверить результат запроса")
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
