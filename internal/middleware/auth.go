package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskboard-api/internal/apierrors"
	"taskboard-api/internal/token"
)

const ContextKeySession = "session"

// RequireAuth verifies the credential cookie and attaches the resulting
// session to the request context.
func RequireAuth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(token.CookieName)
		if err != nil || raw == "" {
			abort(c, apierrors.ErrAuthenticationFailed)
			return
		}

		session, err := tokens.Verify(raw)
		if err != nil {
			if errors.Is(err, token.ErrExpired) {
				abort(c, apierrors.ErrTokenExpired)
				return
			}
			// Verification failures other than expiry are treated as
			// internal, not as a client-input problem.
			abort(c, apierrors.New(err.Error(), http.StatusInternalServerError))
			return
		}

		c.Set(ContextKeySession, session)
		c.Next()
	}
}

func abort(c *gin.Context, err *apierrors.ErrorResponse) {
	_ = c.Error(err)
	c.Abort()
}

// GetSession retrieves the verified session from the request context.
func GetSession(c *gin.Context) (*token.Session, bool) {
	v, exists := c.Get(ContextKeySession)
	if !exists {
		return nil, false
	}
	session, ok := v.(*token.Session)
	return session, ok
}

// SessionUserID returns the authenticated user's identifier as an ObjectID.
func SessionUserID(c *gin.Context) (primitive.ObjectID, bool) {
	session, ok := GetSession(c)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
