package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tasklist/internal/core/domain"
	"tasklist/pkg/apierrors"
)

const principalKey = "principal"

type TokenParser interface {
	Parse(token string) (domain.Principal, error)
}

// Authenticate resolves the bearer token, if any, into the request's
// principal. Requests without a token stay anonymous; a bad token is
// rejected outright.
func Authenticate(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			abortForbidden(c, apierrors.MsgInvalidToken)
			return
		}

		principal, err := tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			zap.L().Debug("rejected bearer token", zap.String("request_id", GetRequestID(c)), zap.Error(err))
			abortForbidden(c, apierrors.MsgInvalidToken)
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireAuth answers 403 for anonymous requests.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetPrincipal(c).IsAuthenticated() {
			abortForbidden(c, apierrors.MsgNotAuthenticated)
			return
		}
		c.Next()
	}
}

func GetPrincipal(c *gin.Context) domain.Principal {
	if value, exists := c.Get(principalKey); exists {
		if principal, ok := value.(domain.Principal); ok {
			return principal
		}
	}
	return domain.Anonymous
}

func abortForbidden(c *gin.Context, msgKey string) {
	c.AbortWithStatusJSON(
		http.StatusForbidden,
		apierrors.CreateError(http.StatusForbidden, msgKey, GetLang(c)),
	)
}
