package permission

import (
	"OctoUptime/internal/pkg/jwt"
	"OctoUptime/internal/pkg/logger"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

// Permission names a capability a request may need
type Permission string

const (
	System   Permission = "SYSTEM"   // read uptime and host information
	Settings Permission = "SETTINGS" // change plugin settings
)

// ClaimsKey is the gin context key the auth middleware stores claims under
const ClaimsKey = "claims"

// ErrNoClaims is returned by ClaimsChecker for requests without claims
var ErrNoClaims = errors.New("request carries no claims")

// Checker decides whether the request behind c holds p
type Checker interface {
	Can(c *gin.Context, p Permission) (bool, error)
}

// CheckerFunc adapts a function to Checker
type CheckerFunc func(c *gin.Context, p Permission) (bool, error)

// Can calls f
func (f CheckerFunc) Can(c *gin.Context, p Permission) (bool, error) { return f(c, p) }

// AllowAll grants everything. It is used when authentication is disabled.
type AllowAll struct{}

// Can always allows
func (AllowAll) Can(*gin.Context, Permission) (bool, error) { return true, nil }

// ClaimsChecker grants the permissions listed in the request's JWT claims
type ClaimsChecker struct{}

// Can implements Checker
func (ClaimsChecker) Can(c *gin.Context, p Permission) (bool, error) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return false, ErrNoClaims
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		return false, fmt.Errorf("unexpected claims type %T", v)
	}
	return claims.Has(string(p)), nil
}

// Check asks checker and treats errors and panics as a denial
func Check(checker Checker, c *gin.Context, p Permission) (allowed bool) {
	if checker == nil {
		return true
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Permission check panicked",
				logger.String("permission", string(p)),
				logger.Any("panic", r))
			allowed = false
		}
	}()

	ok, err := checker.Can(c, p)
	if err != nil {
		logger.Warn("Permission check failed",
			logger.String("permission", string(p)),
			logger.Err(err))
		return false
	}
	return ok
}
