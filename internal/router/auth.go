package router

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/DjordjeVuckovic/model-hub-proxy/internal/apperr"
	"github.com/DjordjeVuckovic/model-hub-proxy/internal/hub"
	"github.com/labstack/echo/v4"
	"golang.org/x/oauth2"
)

// SessionWriter persists the sign-in state and the resulting token for a browser.
type SessionWriter interface {
	SaveToken(w http.ResponseWriter, r *http.Request, token *oauth2.Token) error
	SaveState(w http.ResponseWriter, r *http.Request, state string) error
	PopState(w http.ResponseWriter, r *http.Request) (string, error)
	Clear(w http.ResponseWriter, r *http.Request) error
}

// AuthRouter signs users in against the hub with the OAuth2 authorization code flow.
type AuthRouter struct {
	e          *echo.Echo
	oauth      *oauth2.Config
	sessions   SessionWriter
	successURL string
}

func NewAuthRouter(e *echo.Echo, cfg *hub.Config, sessions SessionWriter) *AuthRouter {
	return &AuthRouter{
		e: e,
		oauth: &oauth2.Config{
			ClientID:     cfg.OAuth.ClientID,
			ClientSecret: cfg.OAuth.ClientSecret,
			RedirectURL:  cfg.OAuth.RedirectURL,
			Scopes:       cfg.OAuth.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthURL(),
				TokenURL:  cfg.TokenURL(),
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		sessions:   sessions,
		successURL: cfg.OAuth.SuccessURL,
	}
}

func (r *AuthRouter) Bind() {
	g := r.e.Group("/auth")
	g.GET("/login", r.loginHandler)
	g.GET("/callback", r.callbackHandler)
	g.POST("/logout", r.logoutHandler)
}

// loginHandler godoc
// @Summary Start hub sign-in
// @Tags auth
// @Success 302
// @Router /auth/login [get]
func (r *AuthRouter) loginHandler(c echo.Context) error {
	state, err := newState()
	if err != nil {
		return fmt.Errorf("error generating oauth state: %w", err)
	}

	if err := r.sessions.SaveState(c.Response(), c.Request(), state); err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, r.oauth.AuthCodeURL(state))
}

// callbackHandler godoc
// @Summary Complete hub sign-in
// @Tags auth
// @Param code query string true "Authorization code"
// @Param state query string true "State issued by /auth/login"
// @Success 302
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /auth/callback [get]
func (r *AuthRouter) callbackHandler(c echo.Context) error {
	if reason := c.QueryParam("error"); reason != "" {
		return apperr.NewValidation("sign-in was denied: " + reason)
	}

	expected, err := r.sessions.PopState(c.Response(), c.Request())
	if err != nil {
		return err
	}
	if expected == "" || c.QueryParam("state") != expected {
		return apperr.NewValidation("mismatched oauth state")
	}

	code := c.QueryParam("code")
	if code == "" {
		return apperr.NewValidation("missing authorization code")
	}

	token, err := r.oauth.Exchange(c.Request().Context(), code)
	if err != nil {
		return apperr.NewUpstreamWrap("failed to exchange authorization code", err)
	}

	if err := r.sessions.SaveToken(c.Response(), c.Request(), token); err != nil {
		return err
	}

	slog.Info("Signed in against model hub")
	return c.Redirect(http.StatusFound, r.successURL)
}

// logoutHandler godoc
// @Summary Sign out
// @Tags auth
// @Success 204
// @Router /auth/logout [post]
func (r *AuthRouter) logoutHandler(c echo.Context) error {
	if err := r.sessions.Clear(c.Response(), c.Request()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func newState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
