// Package pagination reads limit/offset query parameters and pages slices.
package pagination

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// NewMeta creates pagination metadata from params and total count
func NewMeta(params Params, total int) Meta {
	return Meta{
		Total:   total,
		Limit:   params.Limit,
		Offset:  params.Offset,
		HasMore: params.Offset+params.Limit < total,
	}
}

// DefaultParams clamps limit to (0, maxLimit], falling back to defaultLimit,
// and offset to >= 0
func DefaultParams(limit, offset, defaultLimit, maxLimit int) Params {
	if limit <= 0 {
		limit = defaultLimit
	}

	if limit > maxLimit {
		limit = maxLimit
	}

	if offset < 0 {
		offset = 0
	}

	return Params{
		Limit:  limit,
		Offset: offset,
	}
}

// FromQuery reads ?limit= and ?offset=, absent values take the defaults.
// Non numeric values are an error.
func FromQuery(c *gin.Context, defaultLimit, maxLimit int) (Params, error) {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return Params{}, err
	}

	offset, err := queryInt(c, "offset")
	if err != nil {
		return Params{}, err
	}

	return DefaultParams(limit, offset, defaultLimit, maxLimit), nil
}

// Page returns the window of items selected by params
func Page[T any](items []T, params Params) []T {
	if params.Offset >= len(items) {
		return []T{}
	}

	end := min(params.Offset+params.Limit, len(items))

	return items[params.Offset:end]
}

func queryInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}

	return v, nil
}
