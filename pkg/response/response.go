package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ListResponse is a filtered table. TotalCount counts the matching rows, not
// the rows of the current page.
type ListResponse struct {
	Success    bool   `json:"success"`
	Data       any    `json:"data"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalCount int    `json:"totalCount"`
	TotalPages int    `json:"totalPages"`
	NoResults  bool   `json:"noResults"`
	Message    string `json:"message,omitempty"`
	Query      any    `json:"query,omitempty"`
}

type ListMeta struct {
	Page       int
	PageSize   int
	TotalCount int
	NoResults  bool
	Message    string
	Query      any
}

func Ok(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Data:    data,
	})
}

func OkWithMessage(c echo.Context, message string, data any) error {
	return c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Created(c echo.Context, message string, data any) error {
	return c.JSON(http.StatusCreated, SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func BadRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Success: false,
		Error:   err.Error(),
	})
}

func BadRequestWithMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Success: false,
		Error:   message,
	})
}

func NotFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, ErrorResponse{
		Success: false,
		Error:   message,
	})
}

func InternalServerError(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Success: false,
		Error:   err.Error(),
	})
}

func UnprocessableEntity(c echo.Context, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Success: false,
		Error:   err.Error(),
	})
}

// Listing writes a filtered table. A non-positive page size means the whole
// table is on one page.
func Listing(c echo.Context, data any, meta ListMeta) error {
	page := meta.Page
	if page < 1 {
		page = 1
	}

	pageSize := meta.PageSize
	totalPages := 0
	switch {
	case meta.TotalCount == 0:
	case pageSize <= 0:
		pageSize = meta.TotalCount
		totalPages = 1
	default:
		totalPages = meta.TotalCount / pageSize
		if meta.TotalCount%pageSize > 0 {
			totalPages++
		}
	}

	return c.JSON(http.StatusOK, ListResponse{
		Success:    true,
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: meta.TotalCount,
		TotalPages: totalPages,
		NoResults:  meta.NoResults,
		Message:    meta.Message,
		Query:      meta.Query,
	})
}
