package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// authRequest carries the storefront login and register forms. Credentials
// are accepted as-is; only the display name is kept.
type authRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r authRequest) displayName() string {
	if name := strings.TrimSpace(r.Name); name != "" {
		return name
	}
	email := strings.TrimSpace(r.Email)
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}

func (h *handlers) login(c *gin.Context) {
	req, ok := h.bindAuth(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, stateFrom(c).Login(req.displayName()))
}

func (h *handlers) register(c *gin.Context) {
	req, ok := h.bindAuth(c)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, stateFrom(c).Register(req.displayName()))
}

func (h *handlers) logout(c *gin.Context) {
	c.JSON(http.StatusOK, stateFrom(c).Logout())
}

func (h *handlers) me(c *gin.Context) {
	p := stateFrom(c).Profile()
	if !p.LoggedIn {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handlers) bindAuth(c *gin.Context) (authRequest, bool) {
	var req authRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return req, false
	}
	req.Name = h.clean(req.Name)
	req.Email = h.clean(req.Email)
	if req.displayName() == "" {
		badRequest(c, "name or email is required")
		return req, false
	}
	return req, true
}
