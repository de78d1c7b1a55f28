package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"engineview/pkg/auth/controller"
)

type authCtrl struct{}

func New() controller.AuthController { return &authCtrl{} }

// DevLogin sets the USER_ID cookie for local development; real deployments
// put an authenticating proxy in front and pass X-User-Id instead.
func (h *authCtrl) DevLogin(c echo.Context) error {
	uid := c.QueryParam("uid")
	if uid == "" {
		uid = "dev"
	}
	c.SetCookie(&http.Cookie{Name: "USER_ID", Value: uid, Path: "/"})
	return c.JSON(http.StatusOK, map[string]string{"uid": uid})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	return c.JSON(http.StatusOK, map[string]string{"uid": uid})
}
