package access

import (
	"context"
	"strings"
	"time"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Users is the persistence surface for account records. It extends the
// generic repository with the two operations the access core depends on
// plus login bookkeeping.
type Users interface {
	repository.Repository[*User]

	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByEmailTx(ctx context.Context, tx bun.IDB, email string) (*User, error)

	UpsertLinkedIdentity(ctx context.Context, user *User) (*User, error)
	UpsertLinkedIdentityTx(ctx context.Context, tx bun.IDB, user *User) (*User, error)

	Register(ctx context.Context, user *User) (*User, error)
	RegisterTx(ctx context.Context, tx bun.IDB, user *User) (*User, error)

	TrackSuccessfulLogin(ctx context.Context, user *User) error
}

type users struct {
	repository.Repository[*User]
	db *bun.DB
}

var (
	_ Users                        = (*users)(nil)
	_ repository.Repository[*User] = (*users)(nil)
)

func NewUsersRepository(db *bun.DB) Users {
	repo := repository.NewRepository[*User](db, repository.ModelHandlers[*User]{
		NewRecord: func() *User { return &User{} },
		GetID: func(u *User) uuid.UUID {
			if u == nil {
				return uuid.Nil
			}
			return u.ID
		},
		SetID: func(u *User, id uuid.UUID) {
			if u != nil {
				u.ID = id
			}
		},
		GetIdentifier: func() string {
			return "email"
		},
	})

	return &users{
		Repository: repo,
		db:         db,
	}
}

func (a *users) FindByEmail(ctx context.Context, email string) (*User, error) {
	return a.FindByEmailTx(ctx, a.db, email)
}

func (a *users) FindByEmailTx(ctx context.Context, tx bun.IDB, email string) (*User, error) {
	record := &User{}
	err := tx.NewSelect().
		Model(record).
		Where("?TableAlias.email = ?", NormalizeEmail(email)).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, repository.NewRecordNotFound().
				WithMetadata(map[string]any{
					"email": email,
				})
		}
		return nil, err
	}

	return record, nil
}

// UpsertLinkedIdentity creates or refreshes an account linked to an external
// identity provider. Linked accounts carry no password hash; their id is
// derived deterministically from the email so repeated OAuth logins converge
// on the same record.
func (a *users) UpsertLinkedIdentity(ctx context.Context, user *User) (*User, error) {
	return a.UpsertLinkedIdentityTx(ctx, a.db, user)
}

func (a *users) UpsertLinkedIdentityTx(ctx context.Context, tx bun.IDB, user *User) (*User, error) {
	if user == nil || strings.TrimSpace(user.Email) == "" {
		return nil, ErrIdentityNotFound
	}

	user.Email = NormalizeEmail(user.Email)

	existing, err := a.FindByEmailTx(ctx, tx, user.Email)
	if err == nil {
		existing.Provider = user.Provider
		existing.ProviderUserID = user.ProviderUserID
		if user.Role.IsValid() {
			existing.Role = user.Role
		}
		if user.CompanyID != nil {
			existing.CompanyID = user.CompanyID
		}
		return a.Repository.UpdateTx(ctx, tx, existing)
	}

	if !repository.IsRecordNotFound(err) {
		return nil, err
	}

	if user.ID == uuid.Nil {
		if id, herr := hashid.NewUUID(user.Email); herr == nil {
			user.ID = id
		}
	}

	if !user.Role.IsValid() {
		user.Role = RoleClient
	}

	return a.Repository.CreateTx(ctx, tx, user)
}

func (a *users) Register(ctx context.Context, user *User) (*User, error) {
	return a.RegisterTx(ctx, a.db, user)
}

func (a *users) RegisterTx(ctx context.Context, tx bun.IDB, user *User) (*User, error) {
	if user != nil {
		user.Email = NormalizeEmail(user.Email)
		if user.ID == uuid.Nil {
			user.ID = uuid.New()
		}
		if !user.Role.IsValid() {
			user.Role = RoleClient
		}
	}
	return a.Repository.CreateTx(ctx, tx, user)
}

func (a *users) TrackSuccessfulLogin(ctx context.Context, user *User) error {
	loggedInAt := time.Now()
	_, err := a.db.NewUpdate().
		Model(user).
		Set("loggedin_at = ?", loggedInAt).
		WherePK().
		Exec(ctx)
	return err
}
