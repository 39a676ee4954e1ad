package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/arvana/storefront/internal/services/web/module"
	"github.com/arvana/storefront/internal/services/web/platform/httpx"
	"github.com/arvana/storefront/internal/services/web/platform/requestmeta"
	"github.com/arvana/storefront/internal/services/web/platform/sessioncookie"
	"github.com/arvana/storefront/internal/services/web/routepath"
)

const defaultLoginPath = routepath.Login

// ComposeInput carries module groups and shared composition contracts.
type ComposeInput struct {
	// AuthRequired reports whether the request may reach protected modules.
	AuthRequired func(*http.Request) bool
	// Denied answers requests that fail AuthRequired. The default redirects
	// to the sign-in page.
	Denied              http.Handler
	PublicModules       []module.Module
	ProtectedModules    []module.Module
	RequestSchemePolicy requestmeta.SchemePolicy
}

// Compose builds a root HTTP handler from module groups.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	if input.AuthRequired == nil {
		input.AuthRequired = func(*http.Request) bool { return false }
	}
	if input.Denied == nil {
		input.Denied = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			httpx.WriteRedirect(w, r, defaultLoginPath)
		})
	}
	seen := make(map[string]string)
	sameOrigin := requireCookieSessionSameOrigin(input.RequestSchemePolicy)

	for _, feature := range input.PublicModules {
		if feature == nil {
			return nil, fmt.Errorf("public module is nil")
		}
		if err := mountGroupModule(root, feature, seen, sameOrigin, true); err != nil {
			return nil, err
		}
	}

	protectedWrap := wrapProtectedModule(input.AuthRequired, input.Denied, input.RequestSchemePolicy)
	for _, feature := range input.ProtectedModules {
		if feature == nil {
			return nil, fmt.Errorf("protected module is nil")
		}
		if err := mountGroupModule(root, feature, seen, protectedWrap, false); err != nil {
			return nil, err
		}
	}

	return root, nil
}

func mountModule(
	root *http.ServeMux,
	feature module.Module,
	mount module.Mount,
	prefix string,
	seen map[string]string,
	wrap func(http.Handler) http.Handler,
) error {
	if root == nil || feature == nil {
		return nil
	}
	if previous, ok := seen[prefix]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
	}
	seen[prefix] = feature.ID()

	handler := mount.Handler
	if wrap != nil {
		handler = wrap(handler)
	}
	root.Handle(prefix, handler)
	return nil
}

func mountGroupModule(root *http.ServeMux, feature module.Module, seen map[string]string, wrap func(http.Handler) http.Handler, allowRoot bool) error {
	mount, prefix, err := resolveMount(feature)
	if err != nil {
		return err
	}
	if prefix == routepath.Root && !allowRoot {
		return fmt.Errorf("module %q cannot protect the root prefix", feature.ID())
	}
	if err := mountModule(root, feature, mount, prefix, seen, wrap); err != nil {
		return err
	}
	if alias := slashlessPrefixAlias(prefix); alias != "" {
		if err := mountModule(root, feature, mount, alias, seen, wrap); err != nil {
			return err
		}
	}
	return nil
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	if feature == nil {
		return module.Mount{}, "", fmt.Errorf("module is nil")
	}
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := mount.Prefix
	if err := validatePrefix(prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if !strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must end with /")
	}
	return nil
}

// slashlessPrefixAlias returns "/cart" for "/cart/" so the bare collection
// path reaches the module without a redirect.
func slashlessPrefixAlias(prefix string) string {
	if prefix == routepath.Root || !strings.HasSuffix(prefix, "/") {
		return ""
	}
	return strings.TrimSuffix(prefix, "/")
}

func requireAuth(authenticated func(*http.Request) bool, denied http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			return http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !authenticated(r) {
				denied.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func wrapProtectedModule(authenticated func(*http.Request) bool, denied http.Handler, policy requestmeta.SchemePolicy) func(http.Handler) http.Handler {
	authWrap := requireAuth(authenticated, denied)
	csrfWrap := requireCookieSessionSameOrigin(policy)
	return func(next http.Handler) http.Handler {
		return authWrap(csrfWrap(next))
	}
}

// requireCookieSessionSameOrigin rejects cross-origin mutations that carry
// the visitor session cookie.
func requireCookieSessionSameOrigin(policy requestmeta.SchemePolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutationMethod(r) || !hasSessionCookie(r) {
				next.ServeHTTP(w, r)
				return
			}
			if !policy.SameOrigin(r) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isMutationMethod(r *http.Request) bool {
	if r == nil {
		return false
	}
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

func hasSessionCookie(r *http.Request) bool {
	_, ok := sessioncookie.Read(r)
	return ok
}
