package access

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-print"
	"github.com/goliatone/go-router"
	"github.com/goliatone/go-router/flash"
)

// RegisterAuthRoutes mounts the login, logout, and registration routes
func RegisterAuthRoutes[T any](app router.Router[T], opts ...AuthControllerOption) {
	controller := NewAuthController(opts...)

	app.
		Get(controller.Routes.Login, controller.LoginShow).
		SetName("sign-in.get")

	app.
		Post(controller.Routes.Login, controller.LoginPost).
		SetName("sign-in.post")

	app.Get(controller.Routes.Logout, controller.LogOut).SetName("sign-out.get")

	app.Get(controller.Routes.Register, controller.RegistrationShow).
		SetName("register.get")
	app.Post(controller.Routes.Register, controller.RegistrationCreate).
		SetName("register.post")
}

type AuthControllerRoutes struct {
	Login    string
	Logout   string
	Register string
}

type AuthControllerViews struct {
	Login    string
	Logout   string
	Register string
}

type AuthController struct {
	Debug        bool
	Logger       Logger
	Repo         RepositoryManager
	Routes       *AuthControllerRoutes
	Views        *AuthControllerViews
	Guard        *RouteGuard
	ErrorHandler router.ErrorHandler
}

type AuthControllerOption func(*AuthController) *AuthController

func NewAuthController(opts ...AuthControllerOption) *AuthController {
	c := &AuthController{
		Logger:       defLogger{},
		ErrorHandler: defaultErrHandler,
		Routes: &AuthControllerRoutes{
			Login:    "/login",
			Logout:   "/logout",
			Register: "/register",
		},
		Views: &AuthControllerViews{
			Login:    "login",
			Logout:   "logout",
			Register: "register",
		},
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Repo == nil {
		panic("Missing RepositoryManager in auth controller...")
	}

	if c.Guard == nil {
		panic("Missing RouteGuard in auth controller...")
	}

	return c
}

func WithControllerRepo(repo RepositoryManager) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Repo = repo
		return c
	}
}

func WithControllerGuard(guard *RouteGuard) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Guard = guard
		return c
	}
}

func (a *AuthController) LoginShow(ctx router.Context) error {
	return ctx.Render(a.Views.Login, router.ViewContext{
		"errors": nil,
		"record": nil,
	})
}

// LoginRequest payload
type LoginRequest struct {
	Identifier string `form:"identifier" json:"identifier"`
	Password   string `form:"password" json:"password"`
	RememberMe bool   `form:"remember_me" json:"remember_me"`
}

// GetIdentifier returns the identifier
func (r LoginRequest) GetIdentifier() string {
	return r.Identifier
}

// GetPassword will return the password
func (r LoginRequest) GetPassword() string {
	return r.Password
}

// GetExtendedSession reports whether the user asked to stay signed in
func (r LoginRequest) GetExtendedSession() bool {
	return r.RememberMe
}

// Validate will run validation rules
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Identifier,
			validation.Required,
			is.Email,
		),
		validation.Field(
			&r.Password,
			validation.Required,
		),
	)
}

func (a *AuthController) LoginPost(ctx router.Context) error {
	payload := new(LoginRequest)
	errs := map[string]string{}

	if err := ctx.Bind(payload); err != nil {
		a.Logger.Error("login parse payload", "error", err)
		return a.ErrorHandler(ctx, err)
	}

	if err := payload.Validate(); err != nil {
		// Same rendering as a bad credential so the response shape does not
		// reveal which check failed
		errs["authentication"] = "Authentication Error"
		return ctx.Render(a.Views.Login, router.ViewContext{
			"errors": errs,
			"record": payload,
		})
	}

	if a.Debug {
		a.Logger.Debug("login payload: %s", print.MaybePrettyJSON(payload))
	}

	identity, err := a.Guard.Login(ctx, payload)
	if err != nil {
		errs["authentication"] = "Authentication Error"
		return ctx.Render(a.Views.Login, router.ViewContext{
			"errors": errs,
			"record": payload,
		})
	}

	a.Logger.Info("login succeeded", "user_id", identity.ID(), "role", identity.Role())

	redirect := a.Guard.GetRedirect(ctx, defaultZoneFor(identity.Role()).Path())

	return ctx.Redirect(redirect, router.StatusSeeOther)
}

func (a *AuthController) LogOut(ctx router.Context) error {
	a.Guard.Logout(ctx)
	return ctx.Redirect("/", router.StatusTemporaryRedirect)
}

func (a *AuthController) RegistrationShow(ctx router.Context) error {
	return ctx.Render(a.Views.Register, router.ViewContext{
		"errors": map[string]string{},
		"record": RegisterUserMessage{},
	})
}

// RegistrationCreatePayload is the form payload
type RegistrationCreatePayload struct {
	FirstName       string `form:"first_name" json:"first_name"`
	LastName        string `form:"last_name" json:"last_name"`
	Email           string `form:"email" json:"email"`
	Phone           string `form:"phone_number" json:"phone_number"`
	Password        string `form:"password" json:"password"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password"`
}

// Validate will validate the payload
func (r RegistrationCreatePayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.LastName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required, validation.Length(6, 100), is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(minPasswordLength, 100)),
		validation.Field(
			&r.ConfirmPassword,
			validation.Required,
			validation.Length(minPasswordLength, 100),
			validation.By(ValidateStringEquals(r.Password)),
		),
	)
}

func (a *AuthController) RegistrationCreate(ctx router.Context) error {
	payload := new(RegistrationCreatePayload)

	if err := ctx.Bind(payload); err != nil {
		errs := map[string]string{}
		errs["form"] = "Failed to parse form"
		a.Logger.Error("register user parse payload: ", "error", err)
		return flash.WithError(ctx, router.ViewContext{
			"error_message":  err.Error(),
			"system_message": "Error parsing body",
		}).Status(fiber.StatusBadRequest).Render(a.Views.Register, router.ViewContext{
			"errors": errs,
			"record": payload,
		})
	}

	if err := payload.Validate(); err != nil {
		errs := FormatValidationErrorToMap(err)
		a.Logger.Error("register user validate payload: ", "error", err)

		return flash.WithError(ctx, router.ViewContext{
			"error_message":  err.Error(),
			"system_message": "Error validating payload",
		}).Render(a.Views.Register, router.ViewContext{
			"record":     payload,
			"validation": errs,
		})
	}

	req := RegisterUserMessage{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Phone:     payload.Phone,
		Role:      RoleClient,
		Password:  payload.Password,
	}

	registerUser := RegisterUserHandler{repo: a.Repo}
	if err := registerUser.Execute(ctx.Context(), req); err != nil {
		a.Logger.Error("register user error: ", "error", err)

		return flash.WithError(ctx, router.ViewContext{
			"error_message":  err.Error(),
			"system_message": "Error registering user",
		}).Render(a.Views.Register, router.ViewContext{
			"record": payload,
			"errors": []string{err.Error()},
		})
	}

	return flash.WithSuccess(ctx, router.ViewContext{
		"system_message": "Successful user registration",
	}).Redirect("/", fiber.StatusSeeOther)
}

// defaultZoneFor is where a fresh login lands when no rejected route was
// stored: clients to the portal, staff to the dashboard
func defaultZoneFor(role Role) Zone {
	if role == RoleClient {
		return ZonePortal
	}
	return ZoneDashboard
}

// ValidateStringEquals will check that both values match
func ValidateStringEquals(str string) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if s != str {
			return fmt.Errorf("values must match")
		}
		return nil
	}
}

func defaultErrHandler(c router.Context, err error) error {
	return c.Render("errors/500", router.ViewContext{
		"message": err.Error(),
	})
}
