package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/onurcolak/gateway-dashboard/internal/domain"
	"github.com/onurcolak/gateway-dashboard/internal/listview"
	"github.com/onurcolak/gateway-dashboard/internal/middlewares"
	"github.com/onurcolak/gateway-dashboard/internal/viewstate"
	"github.com/onurcolak/gateway-dashboard/pkg/logger"
	"github.com/onurcolak/gateway-dashboard/pkg/response"
	"github.com/onurcolak/gateway-dashboard/pkg/validator"
)

// respondError maps a service error onto the response envelope.
func respondError(c echo.Context, err error) error {
	var ve *validator.ValidationError
	switch {
	case errors.As(err, &ve):
		return validator.HandleValidationError(c, err)
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrInvalidState):
		return response.UnprocessableEntity(c, err)
	default:
		return response.InternalServerError(c, err)
	}
}

// bindAndValidate reads a JSON body into req. It writes the error response
// itself and reports whether the handler should go on.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BadRequest(c, err)
	}
	if err := c.Validate(req); err != nil {
		return false, validator.HandleValidationError(c, err)
	}
	return true, nil
}

// completeView returns the screen to its list after a successful submit. A
// view that was not on the form is left alone, and a failure only logs since
// the submit itself already went through.
func completeView(c echo.Context, views *viewstate.Controller, screen viewstate.Screen) {
	viewID := middlewares.GetViewID(c)
	if views == nil || viewID == "" {
		return
	}

	_, err := views.Apply(c.Request().Context(), viewID, screen, viewstate.Action{Type: viewstate.ActionComplete})
	if err != nil && !errors.Is(err, domain.ErrInvalidTransition) {
		logger.Warnf("Failed to complete %s view %s: %v", screen, viewID, err)
	}
}

func parsePaginationParams(c echo.Context) (int, int, error) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)

	pageStr := c.QueryParam("page")
	pageSizeStr := c.QueryParam("pageSize")

	page := defaultPage
	if pageStr != "" {
		p, err := strconv.Atoi(pageStr)
		if err != nil || p <= 0 {
			return 0, 0, fmt.Errorf("page must be a positive integer")
		}
		page = p
	}

	pageSize := defaultPageSize
	if pageSizeStr != "" {
		ps, err := strconv.Atoi(pageSizeStr)
		if err != nil || ps <= 0 || ps > maxPageSize {
			return 0, 0, fmt.Errorf("pageSize must be between 1 and %d", maxPageSize)
		}
		pageSize = ps
	}

	return page, pageSize, nil
}

// listQuery reads search, filters and sort from the query string. A request
// that names none of them reuses the query the view last used on this
// screen; one that does replaces it.
func listQuery(c echo.Context, views *viewstate.Controller, screen viewstate.Screen, filterKeys ...string) (listview.Query, error) {
	ctx := c.Request().Context()
	viewID := middlewares.GetViewID(c)

	params := c.QueryParams()
	given := params.Has("search") || params.Has("sort") || params.Has("dir")

	q := listview.Query{
		Search: c.QueryParam("search"),
		Sort: listview.Sort{
			Key:       c.QueryParam("sort"),
			Direction: listview.Direction(c.QueryParam("dir")),
		},
	}
	for _, key := range filterKeys {
		if params.Has(key) {
			given = true
			if q.Filters == nil {
				q.Filters = make(map[string]string, len(filterKeys))
			}
			q.Filters[key] = c.QueryParam(key)
		}
	}

	if views == nil || viewID == "" {
		return q, nil
	}

	if !given {
		state, err := views.State(ctx, viewID, screen)
		if err != nil {
			return q, err
		}
		return state.Query, nil
	}

	state, err := views.SetQuery(ctx, viewID, screen, q)
	if err != nil {
		return q, err
	}
	return state.Query, nil
}

// writeListing pages a filtered table into the list envelope.
func writeListing[T any](c echo.Context, result listview.Result[T]) error {
	page, pageSize, err := parsePaginationParams(c)
	if err != nil {
		return response.BadRequest(c, err)
	}

	items := listview.Page(result.Items, page, pageSize)
	if items == nil {
		items = []T{}
	}

	return response.Listing(c, items, response.ListMeta{
		Page:       page,
		PageSize:   pageSize,
		TotalCount: result.Count,
		NoResults:  result.NoResults,
		Message:    result.Message,
		Query:      result.Query,
	})
}
