package handler

import "github.com/labstack/echo/v4"

// currentUserID extracts the user id injected by the Session middleware.
// Empty means the request is anonymous.
func currentUserID(c echo.Context) string {
	id, _ := c.Get("user_id").(string)
	return id
}
