package access

import (
	"context"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/hashid/pkg/hashid"
	"github.com/nyaruka/phonenumbers"
	"github.com/uptrace/bun"
)

type RegisterUserMessage struct {
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Role      Role        `json:"role"`
	CompanyID string      `json:"company_id"`
	Password  string      `json:"password"`
	UseHashid bool        `json:"-"`
	OnCreated func(*User) `json:"-"`
}

func (e RegisterUserMessage) Type() string { return "user.register" }

// defaultPhoneRegion is assumed when a phone number has no country prefix
const defaultPhoneRegion = "US"

// NormalizePhone parses a raw phone number and returns its E.164 form.
// Empty input is passed through; anything unparseable is an error.
func NormalizePhone(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	num, err := phonenumbers.Parse(raw, defaultPhoneRegion)
	if err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryValidation, "invalid phone number")
	}

	if !phonenumbers.IsValidNumber(num) {
		return "", goerrors.New("invalid phone number", goerrors.CategoryValidation)
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}

type RegisterUserHandler struct {
	repo RepositoryManager
}

func NewRegisterUserHandler(repo RepositoryManager) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo}
}

func (h *RegisterUserHandler) Execute(ctx context.Context, event RegisterUserMessage) error {
	select {
	case <-ctx.Done():
		return goerrors.Wrap(
			ctx.Err(),
			goerrors.CategoryOperation,
			"context cancelled during user registration",
		)
	default:
		return h.execute(ctx, event)
	}
}

func (h *RegisterUserHandler) execute(ctx context.Context, event RegisterUserMessage) error {
	user := &User{}
	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	err := h.repo.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		hash, err := HashPassword(event.Password)
		if err != nil {
			var richErr *goerrors.Error
			if goerrors.As(err, &richErr) {
				return goerrors.Wrap(richErr, goerrors.CategoryValidation, "invalid password provided")
			}
			return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to hash password")
		}

		phone, err := NormalizePhone(event.Phone)
		if err != nil {
			return err
		}

		user.PasswordHash = hash
		user.Email = NormalizeEmail(event.Email)
		user.Phone = phone
		user.FirstName = event.FirstName
		user.LastName = event.LastName

		user.Role = event.Role
		if !user.Role.IsValid() {
			user.Role = RoleClient
		}

		if event.CompanyID != "" {
			id, perr := parseCompanyID(event.CompanyID)
			if perr != nil {
				return perr
			}
			user.CompanyID = id
		}

		if event.UseHashid {
			if id, herr := hashid.NewUUID(user.Email); herr == nil {
				user.ID = id
			}
		}

		if user, err = h.repo.Users().RegisterTx(ctx, tx, user); err != nil {
			return goerrors.Wrap(err, goerrors.CategoryConflict, "could not create user")
		}

		return nil
	})

	if err != nil {
		var richErr *goerrors.Error
		if goerrors.As(err, &richErr) {
			return richErr
		}

		return goerrors.Wrap(err, goerrors.CategoryInternal, "user registration transaction failed")
	}

	if event.OnCreated != nil {
		event.OnCreated(user)
	}

	return nil
}
