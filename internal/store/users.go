package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"tweetline/backend/internal/models"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MinPasswordLength is the shortest password accepted at signup.
const MinPasswordLength = 8

// SignupInput is the data needed to create an account.
type SignupInput struct {
	Username  string `validate:"required,alphanum,max=150"`
	Email     string `validate:"required,email,max=254"`
	Password1 string `validate:"required"`
	Password2 string `validate:"required"`
}

// commonPasswords is a short deny list; passwords found here are rejected
// regardless of length.
var commonPasswords = map[string]struct{}{
	"password":   {},
	"password1":  {},
	"12345678":   {},
	"123456789":  {},
	"1234567890": {},
	"qwertyui":   {},
	"qwerty123":  {},
	"iloveyou":   {},
	"11111111":   {},
	"abc12345":   {},
	"letmein1":   {},
	"sunshine":   {},
	"football":   {},
	"baseball":   {},
	"princess":   {},
	"trustno1":   {},
}

var fieldNames = map[string]string{
	"Username":  "username",
	"Email":     "email",
	"Password1": "password1",
	"Password2": "password2",
}

// UserRepository stores accounts.
type UserRepository struct {
	db       *gorm.DB
	validate *validator.Validate
	hashCost int
}

// NewUserRepository returns a repository hashing passwords with hashCost.
func NewUserRepository(db *gorm.DB, hashCost int) *UserRepository {
	if hashCost == 0 {
		hashCost = bcrypt.DefaultCost
	}
	return &UserRepository{db: db, validate: validator.New(), hashCost: hashCost}
}

// Slugify derives the URL slug for a username.
func Slugify(username string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(username)) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)), r == '_', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune('-')
		}
	}
	return b.String()
}

// Create validates the input, hashes the password and stores the user.
func (r *UserRepository) Create(ctx context.Context, in SignupInput) (*models.User, error) {
	verr, err := r.validateSignup(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password1), r.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     in.Username,
		Email:        in.Email,
		Slug:         Slugify(in.Username),
		PasswordHash: string(hashed),
		Role:         models.RoleUser,
	}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fieldError("username", "A user with that username already exists.", ErrAlreadyExists)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) validateSignup(ctx context.Context, in SignupInput) (*ValidationError, error) {
	verr := &ValidationError{}

	if err := r.validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			verr.Add(NonFieldKey, err.Error())
			return verr, nil
		}
		for _, fe := range fieldErrs {
			verr.Add(fieldNames[fe.Field()], validationMessage(fe))
		}
	}

	if !verr.Has("username") {
		var existing int64
		slug := Slugify(in.Username)
		err := r.db.WithContext(ctx).Model(&models.User{}).Where("username = ? OR slug = ?", in.Username, slug).Count(&existing).Error
		if err != nil {
			return nil, fmt.Errorf("check username: %w", err)
		}
		if existing > 0 {
			verr.Add("username", "A user with that username already exists.")
			verr.cause = ErrAlreadyExists
		}
	}

	if verr.Has("password1") || verr.Has("password2") {
		return verr, nil
	}
	if in.Password1 != in.Password2 {
		verr.Add("password2", "The two password fields didn't match.")
		return verr, nil
	}
	for _, msg := range passwordProblems(in.Password1, in.Username) {
		verr.Add("password2", msg)
	}
	return verr, nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "alphanum":
		return "Only ASCII letters and digits are allowed."
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	default:
		return fmt.Sprintf("Failed on the %q rule.", fe.Tag())
	}
}

func passwordProblems(password, username string) []string {
	var problems []string

	lowerPass, lowerUser := strings.ToLower(password), strings.ToLower(username)
	if lowerUser != "" && (strings.Contains(lowerPass, lowerUser) || strings.Contains(lowerUser, lowerPass)) {
		problems = append(problems, "The password is too similar to the username.")
	}
	if len([]rune(password)) < MinPasswordLength {
		problems = append(problems, fmt.Sprintf("This password is too short. It must contain at least %d characters.", MinPasswordLength))
	}
	if _, ok := commonPasswords[lowerPass]; ok {
		problems = append(problems, "This password is too common.")
	}
	if strings.IndexFunc(password, func(r rune) bool { return !unicode.IsDigit(r) }) < 0 {
		problems = append(problems, "This password is entirely numeric.")
	}
	return problems
}

// Authenticate checks username and password.
func (r *UserRepository) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := r.ByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// ByUsername looks a user up by exact, case-sensitive username.
func (r *UserRepository) ByUsername(ctx context.Context, username string) (*models.User, error) {
	return findUser(r.db.WithContext(ctx), "username = ?", username)
}

// BySlug looks a user up by slug.
func (r *UserRepository) BySlug(ctx context.Context, slug string) (*models.User, error) {
	return findUser(r.db.WithContext(ctx), "slug = ?", slug)
}

// ByID looks a user up by primary key.
func (r *UserRepository) ByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "user", Key: fmt.Sprint(id)}
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// SetRole changes the role of an account.
func (r *UserRepository) SetRole(ctx context.Context, username, role string) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Update("role", role)
	if result.Error != nil {
		return fmt.Errorf("set role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return userNotFound(username)
	}
	return nil
}

// Delete removes an account. Tweets, likes and follow edges go with it
// through the foreign key cascades.
func (r *UserRepository) Delete(ctx context.Context, username string) error {
	result := r.db.WithContext(ctx).Where("username = ?", username).Delete(&models.User{})
	if result.Error != nil {
		return fmt.Errorf("delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return userNotFound(username)
	}
	return nil
}

func findUser(db *gorm.DB, query string, arg any) (*models.User, error) {
	var user models.User
	if err := db.Where(query, arg).Take(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userNotFound(fmt.Sprint(arg))
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}
