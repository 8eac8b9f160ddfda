package router

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/DjordjeVuckovic/model-hub-proxy/internal/apperr"
	"github.com/DjordjeVuckovic/model-hub-proxy/internal/hub"
	"github.com/DjordjeVuckovic/model-hub-proxy/internal/session"
	"github.com/DjordjeVuckovic/model-hub-proxy/pkg/pagination"
	"github.com/labstack/echo/v4"
)

const missingTokenMessage = "Failed to get access token!"

// ModelLister fetches one page of the signed-in account's character models.
type ModelLister interface {
	ListAccountCharacterModels(ctx context.Context, token string, params hub.ListParams) (*http.Response, error)
	BaseURL() *url.URL
}

type ModelRouter struct {
	e        *echo.Echo
	hub      ModelLister
	sessions session.Resolver
}

func NewModelRouter(e *echo.Echo, lister ModelLister, sessions session.Resolver) *ModelRouter {
	return &ModelRouter{
		e:        e,
		hub:      lister,
		sessions: sessions,
	}
}

func (r *ModelRouter) Bind() {
	r.e.GET("/api/models/account", r.accountModelsHandler)
}

// accountModelsHandler godoc
// @Summary List the signed-in account's character models
// @Description Returns one page of character models. Pass the returned maxId as max_id to get the next page; maxId is null on the last page.
// @Tags models
// @Produce json
// @Param max_id query string false "Opaque cursor from a previous page"
// @Success 200 {object} AccountModelsPage
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/models/account [get]
func (r *ModelRouter) accountModelsHandler(c echo.Context) error {
	token, ok := r.sessions.ResolveToken(c.Request())
	if !ok {
		return apperr.NewUnauthorized(missingTokenMessage)
	}

	var req pagination.CursorRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return apperr.NewValidationWrap("invalid query parameters", err)
	}

	cursor, size := req.Page()
	params := hub.ListParams{Count: size}
	if cursor != nil {
		params.MaxID = *cursor
	}

	resp, err := r.hub.ListAccountCharacterModels(c.Request().Context(), token, params)
	if err != nil {
		return apperr.NewUpstreamWrap("failed to reach model hub", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Info("Model hub rejected listing", "status", resp.StatusCode)
		return apperr.NewUpstreamStatus(resp.StatusCode)
	}

	page, err := hub.DecodeCollection(resp.Body)
	if err != nil {
		return apperr.NewUpstreamWrap("invalid model hub response", err)
	}

	next, err := pagination.NextCursorFromLink(r.hub.BaseURL(), page.NextHref(), pagination.CursorParam)
	if err != nil {
		return apperr.NewUpstreamWrap("invalid model hub next link", err)
	}

	return c.JSON(http.StatusOK, pagination.NewCursorResult(page.Data, next))
}

// AccountModelsPage is the page envelope returned to clients.
type AccountModelsPage = pagination.CursorResult[json.RawMessage]
