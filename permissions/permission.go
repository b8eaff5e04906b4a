package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// RoleAdmin is granted to routes that are not listed in the table.
const RoleAdmin = "admin"

// Route is one entry of the access table, keyed by the chi route pattern.
type Route struct {
	Path   string   `json:"path"`
	Method string   `json:"method"`
	Roles  []string `json:"roles"`
	Public bool     `json:"public"`
}

// Allows reports whether a caller with role may use the route.
func (r Route) Allows(role string) bool {
	return r.Public || slices.Contains(r.Roles, role)
}

var supportedMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}

type Table struct {
	// Open disables role checks for every route. Authentication still applies.
	Open   bool    `json:"open"`
	Routes []Route `json:"routes"`

	index map[string]Route
}

func routeKey(method, path string) string {
	return strings.ToUpper(method) + " " + path
}

// Lookup returns the entry for the route. Unlisted routes are admin only.
func (t *Table) Lookup(path, method string) Route {
	if route, ok := t.index[routeKey(method, path)]; ok {
		return route
	}

	return Route{Path: path, Method: method, Roles: []string{RoleAdmin}}
}

// IsPublic reports whether the route may be called without a token.
func (t *Table) IsPublic(path, method string) bool {
	return t.Lookup(path, method).Public
}

func Parse(data []byte) (*Table, error) {
	var table Table

	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	table.index = make(map[string]Route, len(table.Routes))

	for _, route := range table.Routes {
		if !strings.HasPrefix(route.Path, "/") {
			return nil, fmt.Errorf("invalid permission path %q", route.Path)
		}

		if !slices.Contains(supportedMethods, route.Method) {
			return nil, fmt.Errorf("unsupported method %q for %s", route.Method, route.Path)
		}

		key := routeKey(route.Method, route.Path)
		if _, dup := table.index[key]; dup {
			return nil, fmt.Errorf("duplicate permission entry %s", key)
		}

		table.index[key] = route
	}

	return &table, nil
}

// Get loads the embedded table. A broken table yields nil, which the RBAC
// middleware treats as deny-all.
func Get() *Table {
	table, err := Parse(permissionsData)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load embedded permissions")

		return nil
	}

	log.Info().Int("routes", len(table.Routes)).Msg("Successfully loaded embedded permissions")

	return table
}
