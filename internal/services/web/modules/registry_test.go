package modules

import (
	"context"
	"testing"

	"github.com/arvana/storefront/internal/platform/events"
	"github.com/arvana/storefront/internal/storefront/activity"
	"github.com/arvana/storefront/internal/storefront/catalog"
	"github.com/arvana/storefront/internal/storefront/contact"
)

type nopDeliverer struct{}

func (nopDeliverer) Deliver(context.Context, contact.Submission) error { return nil }

func testDependencies(t *testing.T) Dependencies {
	t.Helper()
	service, err := contact.NewService(nopDeliverer{}, contact.NewMemoryInbox(), nil)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return Dependencies{
		Catalog:   catalog.Default(),
		Publisher: events.Nop{},
		Contact:   service,
		Stats:     activity.NewTracker(activity.DefaultBaseline()),
	}
}

func TestDefaultModulesIncludeEveryArea(t *testing.T) {
	t.Parallel()

	deps := testDependencies(t)
	public := DefaultPublicModules(deps, ModuleResolvers{})
	protected := DefaultProtectedModules(deps, ModuleResolvers{})

	wantPublic := []string{"public", "shop", "cart", "wishlist", "contact", "notifications"}
	if len(public) != len(wantPublic) {
		t.Fatalf("public module count = %d, want %d", len(public), len(wantPublic))
	}
	for i, want := range wantPublic {
		if got := public[i].ID(); got != want {
			t.Fatalf("public module[%d] id = %q, want %q", i, got, want)
		}
	}
	if len(protected) != 1 || protected[0].ID() != "admin" {
		t.Fatalf("protected modules = %v, want [admin]", protected)
	}
}

func TestDefaultModulesHaveUniquePrefixes(t *testing.T) {
	t.Parallel()

	deps := testDependencies(t)
	all := append(DefaultPublicModules(deps, ModuleResolvers{}), DefaultProtectedModules(deps, ModuleResolvers{})...)
	seen := map[string]struct{}{}
	for _, module := range all {
		mount, err := module.Mount()
		if err != nil {
			t.Fatalf("module %q mount error = %v", module.ID(), err)
		}
		if mount.Prefix == "" {
			t.Fatalf("module %q prefix is empty", module.ID())
		}
		if _, ok := seen[mount.Prefix]; ok {
			t.Fatalf("duplicate mount prefix %q", mount.Prefix)
		}
		seen[mount.Prefix] = struct{}{}
	}
}

func TestModulesRejectMissingDependencies(t *testing.T) {
	t.Parallel()

	all := append(DefaultPublicModules(Dependencies{}, ModuleResolvers{}), DefaultProtectedModules(Dependencies{}, ModuleResolvers{})...)
	for _, module := range all {
		if module.ID() == "notifications" {
			continue
		}
		if _, err := module.Mount(); err == nil {
			t.Fatalf("module %q mounted without dependencies", module.ID())
		}
	}
}
