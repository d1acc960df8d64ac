package handler

import (
	"errors"
	"net/http"
	"strings"

	"tweetline/backend/internal/auth"
	"tweetline/backend/internal/logging"
	"tweetline/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// SignupForm is the account creation form.
type SignupForm struct {
	Username  string `form:"username" json:"username" example:"alice"`
	Email     string `form:"email" json:"email" example:"alice@example.com"`
	Password1 string `form:"password1" json:"password1" example:"correcthorse42"`
	Password2 string `form:"password2" json:"password2" example:"correcthorse42"`
}

// LoginForm is the session login form.
type LoginForm struct {
	Username string `form:"username" json:"username" example:"alice"`
	Password string `form:"password" json:"password" example:"correcthorse42"`
	Next     string `form:"next" json:"next" example:"/"`
}

// TokenInput defines the structure for API token requests.
type TokenInput struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"correcthorse42"`
}

// TokenResponse carries a bearer token.
type TokenResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
}

// AccountPageResponse backs the signup and login pages.
type AccountPageResponse struct {
	Next     string         `json:"next,omitempty" example:"/"`
	Messages []auth.Message `json:"messages"`
}

// endregion

const invalidLoginMessage = "Please enter a correct username and password. Note that both fields may be case-sensitive."

// SignupPage godoc
// @Summary      Signup page
// @Tags         accounts
// @Produce      json
// @Success      200  {object}  AccountPageResponse
// @Router       /accounts/signup [get]
func (h *Handler) SignupPage(c *gin.Context) {
	c.JSON(http.StatusOK, AccountPageResponse{Messages: h.messages(c)})
}

// Signup godoc
// @Summary      Create an account
// @Description  Creates a user, logs them in and redirects home. Invalid input is returned as field errors with status 200.
// @Tags         accounts
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username   formData  string  true  "Username"
// @Param        email      formData  string  true  "Email"
// @Param        password1  formData  string  true  "Password"
// @Param        password2  formData  string  true  "Password confirmation"
// @Success      302
// @Success      200  {object}  FormErrorResponse
// @Router       /accounts/signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var form SignupForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.users.Create(c.Request.Context(), store.SignupInput{
		Username:  strings.TrimSpace(form.Username),
		Email:     strings.TrimSpace(form.Email),
		Password1: form.Password1,
		Password2: form.Password2,
	})
	if err != nil {
		var verr *store.ValidationError
		if errors.As(err, &verr) {
			h.formError(c, verr, map[string]string{"username": form.Username, "email": form.Email})
			return
		}
		h.fail(c, err)
		return
	}

	h.metrics.SignupSuccess.Inc()
	logging.FromContext(c, h.log).WithField("user_id", user.ID).Info("user signed up")

	if err := h.sessions.Login(c, user.ID); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, HomePath)
}

// LoginPage godoc
// @Summary      Login page
// @Tags         accounts
// @Produce      json
// @Param        next  query     string  false  "Where to go after login"
// @Success      200   {object}  AccountPageResponse
// @Router       /accounts/login [get]
func (h *Handler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, AccountPageResponse{Next: safeNext(c.Query("next")), Messages: h.messages(c)})
}

// Login godoc
// @Summary      Log in
// @Description  Starts a cookie session. Wrong credentials are returned as a form error with status 200.
// @Tags         accounts
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true   "Username"
// @Param        password  formData  string  true   "Password"
// @Param        next      formData  string  false  "Where to go after login"
// @Success      302
// @Success      200  {object}  FormErrorResponse
// @Router       /accounts/login [post]
func (h *Handler) Login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			h.metrics.LoginFailure.WithLabelValues("invalid_credentials").Inc()
			verr := &store.ValidationError{}
			verr.Add(store.NonFieldKey, invalidLoginMessage)
			h.formError(c, verr, map[string]string{"username": form.Username, "next": form.Next})
			return
		}
		h.fail(c, err)
		return
	}

	if err := h.sessions.Login(c, user.ID); err != nil {
		h.fail(c, err)
		return
	}
	h.metrics.LoginSuccess.Inc()
	c.Redirect(http.StatusFound, safeNext(form.Next))
}

// Logout godoc
// @Summary      Log out
// @Tags         accounts
// @Success      302
// @Router       /accounts/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	if err := h.sessions.Logout(c); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, auth.LoginPath)
}

// IssueToken godoc
// @Summary      Issue an API token
// @Description  Authenticates with username and password and returns a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body TokenInput true "Credentials"
// @Success      200  {object}  TokenResponse
// @Failure      400  {object}  ErrorResponse "Invalid input"
// @Failure      401  {object}  ErrorResponse "Invalid credentials"
// @Failure      500  {object}  ErrorResponse "Internal server error"
// @Router       /api/v1/auth/token [post]
func (h *Handler) IssueToken(c *gin.Context) {
	var input TokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			h.metrics.LoginFailure.WithLabelValues("invalid_credentials").Inc()
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
			return
		}
		h.fail(c, err)
		return
	}

	token, err := h.tokens.GenerateToken(user.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.metrics.LoginSuccess.Inc()
	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// safeNext only allows local redirect targets.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return HomePath
	}
	return next
}
