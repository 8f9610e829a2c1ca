package access

import (
	"context"
	"net/http"
	"time"

	"github.com/agencykit/go-access/middleware/sessionware"
	"github.com/goliatone/go-router"
)

// RouteGuard wires the access core into HTTP routing: it classifies each
// request into a zone, applies the decision table, and manages the session
// cookie on login and logout.
type RouteGuard struct {
	auth                   Authenticator
	cfg                    Config
	cookieDuration         time.Duration
	extendedCookieDuration time.Duration
	Logger                 Logger
}

func NewRouteGuard(auther Authenticator, cfg Config) (*RouteGuard, error) {
	cookieDuration := time.Duration(cfg.GetTokenExpiration()) * time.Hour

	extendedCookieDuration := cookieDuration
	if cfg.GetExtendedTokenDuration() > 0 {
		extendedCookieDuration = time.Duration(cfg.GetExtendedTokenDuration()) * time.Hour
	}

	return &RouteGuard{
		cfg:                    cfg,
		auth:                   auther,
		Logger:                 defLogger{},
		cookieDuration:         cookieDuration,
		extendedCookieDuration: extendedCookieDuration,
	}, nil
}

func (a RouteGuard) GetCookieDuration() time.Duration {
	return a.cookieDuration
}

func (a RouteGuard) GetExtendedCookieDuration() time.Duration {
	return a.extendedCookieDuration
}

// ProtectedRoute returns token-validating middleware for routes that must
// always carry a session, regardless of zone
func (a *RouteGuard) ProtectedRoute(errorHandler func(router.Context, error) error) router.MiddlewareFunc {
	return sessionware.New(sessionware.Config{
		ErrorHandler: errorHandler,
		SigningKey: sessionware.SigningKey{
			Key:    []byte(a.cfg.GetSigningKey()),
			JWTAlg: "HS256",
		},
		AuthScheme:     a.cfg.GetAuthScheme(),
		ContextKey:     a.cfg.GetContextKey(),
		TokenLookup:    a.cfg.GetTokenLookup(),
		TokenValidator: a.sessionValidator(),
		ContextEnricher: func(c context.Context, claims sessionware.Claims) context.Context {
			if sc, ok := claims.(*SessionClaims); ok {
				return WithClaimsContext(c, sc)
			}
			return c
		},
	})
}

// ZoneGuard returns middleware implementing the zone decision table for
// every route it wraps. The session token is optional; an invalid token is
// treated the same as no token, forcing re-authentication where the zone
// requires one.
func (a *RouteGuard) ZoneGuard() router.MiddlewareFunc {
	extractors := sessionware.GetExtractors(a.cfg.GetTokenLookup(), a.cfg.GetAuthScheme())

	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(ctx router.Context) error {
			zone := ClassifyPath(ctx.Path())

			var claims *SessionClaims
			if raw, err := sessionware.ExtractRawTokenFromContext(ctx, extractors); err == nil && raw != "" {
				if decoded, derr := a.auth.ClaimsFromToken(raw); derr == nil {
					claims = decoded
				}
			}

			decision := Decide(zone, claims)

			switch {
			case decision.Denied():
				a.Logger.Info("zone guard denied unauthenticated request", "zone", zone, "path", ctx.Path())
				a.SetRedirect(ctx)
				return a.redirect(ctx, ZoneAuthPages.Path())

			case decision.Redirected():
				a.Logger.Info("zone guard redirecting", "zone", zone, "target", decision.Target, "path", ctx.Path())
				return a.redirect(ctx, decision.Target.Path())
			}

			if claims != nil {
				ctx.Locals(a.cfg.GetContextKey(), claims)
				ctx.SetContext(WithClaimsContext(ctx.Context(), claims))
			}

			return next(ctx)
		}
	}
}

// Login authenticates the payload and sets the session cookie
func (a *RouteGuard) Login(ctx router.Context, payload LoginPayload) (Identity, error) {
	token, identity, err := a.auth.Login(ctx.Context(), payload.GetIdentifier(), payload.GetPassword())
	if err != nil {
		a.Logger.Error("Login error: %s", err)
		return nil, err
	}

	duration := a.cookieDuration
	if payload.GetExtendedSession() {
		duration = a.extendedCookieDuration
	}

	a.setCookieToken(ctx, token, duration)
	return identity, nil
}

// Logout discards the session cookie. Tokens are stateless so there is
// nothing to destroy server-side.
func (a *RouteGuard) Logout(ctx router.Context) {
	a.cookieDel(ctx, a.cfg.GetContextKey())
}

func (a *RouteGuard) GetRedirect(ctx router.Context, def ...string) string {
	rejectedRoute := a.cfg.GetRejectedRouteKey()
	r := ctx.Cookies(rejectedRoute)
	if r == "" {
		return def[0]
	}
	a.cookieDel(ctx, rejectedRoute)
	return r
}

func (a *RouteGuard) GetRedirectOrDefault(ctx router.Context) string {
	rejectedRoute := a.cfg.GetRejectedRouteKey()
	refererHeader := string(ctx.Referer())

	r := ctx.Cookies(rejectedRoute, refererHeader)
	if r == "" {
		r = a.cfg.GetRejectedRouteDefault()
	}
	a.cookieDel(ctx, rejectedRoute)
	return r
}

func (a *RouteGuard) SetRedirect(ctx router.Context) {
	rejectedRoute := a.cfg.GetRejectedRouteKey()

	a.Logger.Info("Setting redirect cookie", "key", rejectedRoute, "path", ctx.OriginalURL())

	ctx.Cookie(&router.Cookie{
		Name:     rejectedRoute,
		Value:    ctx.OriginalURL(),
		Expires:  time.Now().Add(time.Minute * 5),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
	})
}

func (a *RouteGuard) sessionValidator() sessionware.TokenValidator {
	return sessionware.TokenValidatorFunc(func(raw string) (sessionware.Claims, error) {
		claims, err := a.auth.ClaimsFromToken(raw)
		if err != nil {
			return nil, err
		}
		return claims, nil
	})
}

func (a *RouteGuard) redirect(ctx router.Context, target string) error {
	statusCode := http.StatusSeeOther
	if ctx.Method() == string(router.GET) {
		statusCode = http.StatusFound
	}
	return ctx.Redirect(target, statusCode)
}

func (a *RouteGuard) setCookieToken(c router.Context, val string, duration time.Duration) {
	c.Cookie(&router.Cookie{
		Name:     a.cfg.GetContextKey(),
		Value:    val,
		Expires:  time.Now().Add(duration),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
	})
}

func (a *RouteGuard) cookieDel(c router.Context, name string) {
	c.Cookie(&router.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour * (24 * 365)),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
	})
}
