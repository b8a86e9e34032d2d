package mutation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"portfolio/internal/domain"
	"portfolio/internal/domain/models"
	"portfolio/internal/domain/services"
	"portfolio/internal/viewcache"
)

const msgUnexpected = "An unexpected error occurred"

// guard is the boundary shared by every mutation: identity check, panic
// recovery, error classification and cache invalidation.
type guard struct {
	entity      string
	invalidator services.Invalidator
	routes      []string
	logger      *slog.Logger
}

func newGuard(entity string, invalidator services.Invalidator, logger *slog.Logger, routes ...string) guard {
	return guard{
		entity:      entity,
		invalidator: invalidator,
		routes:      routes,
		logger:      logger,
	}
}

// contentRoutes are the views that render admin-managed content.
var contentRoutes = []string{viewcache.RouteLanding, viewcache.RouteDashboard}

// run executes fn as the mutation named verb. A zero identity is rejected
// when requireIdentity is set. fn never sees a panic escape.
func (g guard) run(ctx context.Context, verb string, who models.Identity, requireIdentity bool, fn func(ctx context.Context) services.Result) (res services.Result) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("mutation panicked",
				"entity", g.entity,
				"op", verb,
				"panic", r,
				"stack", string(debug.Stack()),
			)
			res = services.Failed(services.KindUnexpected, msgUnexpected)
		}
	}()

	if requireIdentity && who.IsZero() {
		g.logger.Warn("mutation rejected without identity", "entity", g.entity, "op", verb)
		return services.Failed(services.KindUnauthorized, "You must be signed in to do that")
	}

	res = fn(ctx)
	if res.OK() {
		if g.invalidator != nil {
			g.invalidator.Invalidate(g.routes...)
		}
		g.logger.Info(g.entity+" "+pastTense(verb),
			"id", res.ID,
			"user_id", who.UserID,
		)
	}
	return res
}

// backendFailed converts a repository error into a result. The raw error
// is logged and never returned to the caller.
func (g guard) backendFailed(verb, id string, err error) services.Result {
	g.logger.Error("mutation failed",
		"entity", g.entity,
		"op", verb,
		"id", id,
		"error", err,
	)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return services.Failed(services.KindNotFound, fmt.Sprintf("%s not found", capitalize(g.entity)))
	case errors.Is(err, domain.ErrValidation):
		return services.Failed(services.KindOutOfRange, fmt.Sprintf("Invalid %s", g.entity))
	default:
		return services.Failed(services.KindBackendFailed, fmt.Sprintf("Failed to %s %s", verb, g.entity))
	}
}

func (g guard) succeeded(verb, id string) services.Result {
	return services.Succeeded(id, fmt.Sprintf("%s %s successfully", capitalize(g.entity), pastTense(verb)))
}

const (
	verbCreate = "create"
	verbUpdate = "update"
	verbDelete = "delete"
	verbSubmit = "submit"
)

func pastTense(verb string) string {
	if verb == verbSubmit {
		return "submitted"
	}
	return verb + "d"
}

// validate runs the presence rules first and the range rules second, so a
// missing field is always reported as missing even if another field is
// also out of range. A nil result means the input may be written.
func validate(presence func() error, missingMessage string, ranges func() error) *services.Result {
	if err := presence(); err != nil {
		res := services.Failed(services.KindMissingField, missingMessage)
		return &res
	}
	if err := ranges(); err != nil {
		res := services.Failed(services.KindOutOfRange, firstMessage(err))
		return &res
	}
	return nil
}

// firstMessage picks a stable single message out of a validation error.
func firstMessage(err error) string {
	var errs validation.Errors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err.Error()
	}
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return capitalize(errs[keys[0]].Error())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// nullable maps an empty form value to NULL.
func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// requireID rejects an empty identifier before it reaches the backend.
func requireID(id string) *services.Result {
	if strings.TrimSpace(id) == "" {
		res := services.Failed(services.KindMissingField, "ID is required")
		return &res
	}
	return nil
}
