package handler

import (
	"strconv"

	domainerrors "campwatch/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("id must be a positive integer")
	}

	return uint(id), nil
}

// queryInt returns def when the parameter is absent.
func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be an integer")
	}

	return v, nil
}

// queryInt64 returns nil when the parameter is absent.
func queryInt64(c echo.Context, name string) (*int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be an integer")
	}

	return &v, nil
}

func queryBool(c echo.Context, name string, def bool) (bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, domainerrors.ErrValidationFailed.WithDetails(name + " must be a boolean")
	}

	return v, nil
}
