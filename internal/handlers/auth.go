package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskboard-api/internal/apierrors"
	"taskboard-api/internal/config"
	"taskboard-api/internal/middleware"
	"taskboard-api/internal/response"
	"taskboard-api/internal/services"
	"taskboard-api/internal/token"
	"taskboard-api/internal/validation"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	auth   *services.AuthService
	tokens *token.Manager
	cfg    *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *services.AuthService, tokens *token.Manager, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		tokens: tokens,
		cfg:    cfg,
	}
}

// Signup registers a new user with a default board.
func (h *AuthHandler) Signup(c *gin.Context) {
	raw, err := bindBody(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	values, verr := validation.AuthSchema.Validate(raw)
	if verr != nil {
		_ = c.Error(verr)
		return
	}

	id, err := h.auth.Signup(c.Request.Context(), values["email"].(string), values["password"].(string))
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, gin.H{
		"message": fmt.Sprintf("User successfully created with ObjectID %s", id),
	})
}

// Login authenticates a user and delivers the credential cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	raw, err := bindBody(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	values, verr := validation.AuthSchema.Validate(raw)
	if verr != nil {
		_ = c.Error(verr)
		return
	}

	signed, userID, err := h.auth.Login(c.Request.Context(), values["email"].(string), values["password"].(string))
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.setTokenCookie(c, signed, int(h.tokens.Expiry().Seconds()))
	response.Success(c, gin.H{
		"message": fmt.Sprintf("User with id %s logged in successfully", userID),
	})
}

// Logout discards the credential cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setTokenCookie(c, "", -1)
	response.Success(c, gin.H{
		"message": "User logged out successfully",
	})
}

// GetUserDetails returns the authenticated user's email, boards and last
// visited board.
func (h *AuthHandler) GetUserDetails(c *gin.Context) {
	userID, ok := middleware.SessionUserID(c)
	if !ok {
		_ = c.Error(apierrors.ErrAuthenticationFailed)
		return
	}

	user, boards, err := h.auth.UserDetails(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, gin.H{
		"email":              user.Email,
		"boards":             boards,
		"lastVisitedBoardId": user.LastVisitedBoardID,
	})
}

// UpdateLastVisitedBoard records which board the client opened last.
func (h *AuthHandler) UpdateLastVisitedBoard(c *gin.Context) {
	userID, ok := middleware.SessionUserID(c)
	if !ok {
		_ = c.Error(apierrors.ErrAuthenticationFailed)
		return
	}

	raw, err := bindBody(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	values, verr := validation.UpdateUserSchema.Validate(raw)
	if verr != nil {
		_ = c.Error(verr)
		return
	}

	boardID, err := primitive.ObjectIDFromHex(values["boardId"].(string))
	if err != nil {
		_ = c.Error(apierrors.Validation(validation.MsgInvalidObjectID))
		return
	}

	if err := h.auth.SetLastVisitedBoard(c.Request.Context(), userID, boardID); err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, gin.H{
		"message": "Last visited board updated successfully",
	})
}

// RemoveUser deletes the authenticated user's account, cascading to their
// boards and tasks. The path id must match the session user.
func (h *AuthHandler) RemoveUser(c *gin.Context) {
	userID, ok := middleware.SessionUserID(c)
	if !ok {
		_ = c.Error(apierrors.ErrAuthenticationFailed)
		return
	}

	id, verr := validation.ValidateObjectID(c.Param("userId"))
	if verr != nil {
		_ = c.Error(verr)
		return
	}
	if id != userID {
		_ = c.Error(apierrors.ErrAuthenticationFailed)
		return
	}

	if err := h.auth.Remove(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	h.setTokenCookie(c, "", -1)
	response.Success(c, gin.H{
		"message": fmt.Sprintf("User with id %s removed successfully", id.Hex()),
	})
}

// setTokenCookie writes the credential cookie. Cross-origin delivery
// (SameSite=None) is only enabled in the controlled production deployment.
func (h *AuthHandler) setTokenCookie(c *gin.Context, value string, maxAge int) {
	sameSite := http.SameSiteStrictMode
	secure := false
	if h.cfg.IsProduction() {
		sameSite = http.SameSiteNoneMode
		secure = true
	}
	c.SetSameSite(sameSite)
	c.SetCookie(token.CookieName, value, maxAge, "/", "", secure, true)
}
