package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
)

// DefaultRequiredRoles are the Discord role names allowed to submit reports.
var DefaultRequiredRoles = []string{"Law Enforcement", "Officer", "Admin"}

// RoleChecker returns the names of a user's roles in the configured guild.
type RoleChecker interface {
	MemberRoles(ctx context.Context, userID string) ([]string, error)
}

// Decision is the outcome of a role check.
type Decision struct {
	Allowed bool
	Roles   []string
}

// Gate admits callers whose identity resolves and who hold a required role.
type Gate struct {
	resolver Resolver
	checker  RoleChecker
	required []string
}

// NewGate creates a gate. With a nil checker, roles come from the identity:
// signed identities must still hold a required role, while callers known only
// from proxy headers are admitted. An empty required list admits anyone the
// checker can look up.
func NewGate(resolver Resolver, checker RoleChecker, required []string) *Gate {
	if checker == nil {
		slog.Warn("Discord role checks disabled; only signed identity roles are enforced")
	}
	return &Gate{
		resolver: resolver,
		checker:  checker,
		required: required,
	}
}

// Check applies the role rule to an identified caller. A failed lookup denies
// access with no roles.
func (g *Gate) Check(ctx context.Context, id *Identity) Decision {
	if g.checker == nil {
		roles := id.Roles
		if roles == nil {
			roles = []string{}
		}
		if !id.Signed {
			return Decision{Allowed: true, Roles: roles}
		}
		return g.decide(roles)
	}

	roles, err := g.checker.MemberRoles(ctx, id.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "Error checking user roles", "user", id.UserID, "error", err)
		return Decision{Allowed: false, Roles: []string{}}
	}
	if roles == nil {
		roles = []string{}
	}
	return g.decide(roles)
}

func (g *Gate) decide(roles []string) Decision {
	if len(g.required) == 0 {
		return Decision{Allowed: true, Roles: roles}
	}
	for _, role := range g.required {
		if slices.Contains(roles, role) {
			return Decision{Allowed: true, Roles: roles}
		}
	}
	return Decision{Allowed: false, Roles: roles}
}

// Require wraps next so it only runs for admitted callers. The admitted
// identity, with its checked roles, is available through FromContext.
func (g *Gate) Require(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := g.resolver.Resolve(r)
		if err != nil {
			slog.Debug("Rejected unauthenticated request", "path", r.URL.Path, "error", err)
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"error":   "Authentication required",
				"message": "Please log in to access this application.",
			})
			return
		}

		decision := g.Check(r.Context(), id)
		if !decision.Allowed {
			slog.Info("Rejected request without required role", "user", id.UserID, "roles", decision.Roles)
			writeJSON(w, http.StatusForbidden, map[string]any{
				"error":     "Insufficient permissions",
				"message":   "You do not have the required Discord server roles to access this application.",
				"userRoles": decision.Roles,
			})
			return
		}

		id.Roles = decision.Roles
		next(w, r.WithContext(WithIdentity(r.Context(), id)))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}
