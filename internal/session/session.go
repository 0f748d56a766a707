// Package session is the login gate in front of the app shell. There is no
// credential check; only the shape of the input is validated.
package session

import (
	"errors"
	"unicode/utf8"

	"GuardianesDelFuego/internal/constants"

	"github.com/go-playground/validator/v10"
)

var (
	ErrCredentialsRequired = errors.New("Ingresa usuario y contraseña")
	ErrPasswordTooShort    = errors.New("Contraseña muy corta")
)

// Credentials is the login form input. Field order is validation order.
type Credentials struct {
	Username string `validate:"required"`
	Password string `validate:"required,password"`
}

var validate = newValidator()

// newValidator registers "password", which counts runes against
// constants.MinPasswordLength.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return utf8.RuneCountInString(fl.Field().String()) >= constants.MinPasswordLength
	})
	return v
}

// Check validates c and maps the first failure to a user-facing error.
func (c Credentials) Check() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	// Empty fields win over length so an empty password reads as missing.
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return ErrCredentialsRequired
		}
	}
	return ErrPasswordTooShort
}

// Gate holds the logged-in flag and username.
type Gate struct {
	loggedIn bool
	username string
}

// Login validates the credentials and marks the gate as logged in.
func (g *Gate) Login(username, password string) error {
	if err := (Credentials{Username: username, Password: password}).Check(); err != nil {
		return err
	}
	g.loggedIn = true
	g.username = username
	return nil
}

// Logout clears the session.
func (g *Gate) Logout() {
	g.loggedIn = false
	g.username = ""
}

func (g Gate) LoggedIn() bool   { return g.loggedIn }
func (g Gate) Username() string { return g.username }
