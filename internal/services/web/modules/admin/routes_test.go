package admin

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/arvana/storefront/internal/platform/events"
	"github.com/arvana/storefront/internal/services/web/platform/modulehandler"
	"github.com/arvana/storefront/internal/services/web/platform/webtest"
	"github.com/arvana/storefront/internal/services/web/routepath"
	webtemplates "github.com/arvana/storefront/internal/services/web/templates"
	"github.com/arvana/storefront/internal/storefront/activity"
	"github.com/arvana/storefront/internal/storefront/catalog"
	"github.com/arvana/storefront/internal/storefront/contact"
)

type stubInbox struct {
	messages []contact.Message
	err      error
}

func (i stubInbox) Messages(context.Context) ([]contact.Message, error) {
	return append([]contact.Message(nil), i.messages...), i.err
}

func newMux(inbox Inbox, tracker *activity.Tracker) *http.ServeMux {
	if tracker == nil {
		tracker = activity.NewTracker(activity.DefaultBaseline())
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(catalog.Default(), tracker, inbox, modulehandler.NewTestBase()))
	return mux
}

func TestMountRequiresSources(t *testing.T) {
	t.Parallel()

	if _, err := New(catalog.Default(), nil, nil, modulehandler.NewTestBase()).Mount(); err == nil {
		t.Fatalf("expected missing sources error")
	}
	mount, err := New(catalog.Default(), activity.NewTracker(activity.Baseline{}), stubInbox{}, modulehandler.NewTestBase()).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.AdminPrefix {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, routepath.AdminPrefix)
	}
}

func TestRegisterRoutesAdminPathAndMethodContracts(t *testing.T) {
	t.Parallel()

	mux := newMux(stubInbox{messages: contact.SeedMessages()}, nil)
	registerRoutes(nil, handlers{})

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "admin root", method: http.MethodGet, path: routepath.Admin, wantStatus: http.StatusOK},
		{name: "admin slash root", method: http.MethodGet, path: routepath.AdminPrefix, wantStatus: http.StatusOK},
		{name: "products tab", method: http.MethodGet, path: routepath.Admin + "?tab=products", wantStatus: http.StatusOK},
		{name: "messages tab", method: http.MethodGet, path: routepath.Admin + "?tab=messages", wantStatus: http.StatusOK},
		{name: "unknown subpath", method: http.MethodGet, path: routepath.AdminPrefix + "settings", wantStatus: http.StatusNotFound},
		{name: "post rejected", method: http.MethodPost, path: routepath.Admin, wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := webtest.Serve(mux, webtest.Request(tc.method, tc.path, nil, webtest.NewVisitor(t)))
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
		})
	}
}

func TestDashboardShowsBaselineAndLiveActivity(t *testing.T) {
	t.Parallel()

	tracker := activity.NewTracker(activity.DefaultBaseline())
	if err := tracker.Handle(context.Background(), events.Event{Type: events.TypeCartLineAdded, Quantity: 3}); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	mux := newMux(stubInbox{messages: contact.SeedMessages()}, tracker)

	rr := webtest.Serve(mux, webtest.Request(http.MethodGet, routepath.Admin, nil, webtest.NewVisitor(t)))
	body := rr.Body.String()
	for _, want := range []string{"$89650.00", "<dd>3</dd>", `class="badge">1<`} {
		if !strings.Contains(body, want) {
			t.Fatalf("dashboard missing %q", want)
		}
	}
}

func TestMessagesTabListsInbox(t *testing.T) {
	t.Parallel()

	mux := newMux(stubInbox{messages: contact.SeedMessages()}, nil)
	rr := webtest.Serve(mux, webtest.Request(http.MethodGet, routepath.Admin+"?tab=messages", nil, webtest.NewVisitor(t)))
	body := rr.Body.String()
	if !strings.Contains(body, "John Doe") || !strings.Contains(body, "Sarah Smith") {
		t.Fatalf("messages tab missing seeded senders")
	}
	if !strings.Contains(body, "1 unread") {
		t.Fatalf("messages tab missing unread count")
	}
}

func TestInboxFailureRendersErrorPage(t *testing.T) {
	t.Parallel()

	mux := newMux(stubInbox{err: errors.New("database is locked")}, nil)
	rr := webtest.Serve(mux, webtest.Request(http.MethodGet, routepath.Admin, nil, webtest.NewVisitor(t)))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

func TestParseTab(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":                                  webtemplates.AdminTabDashboard,
		"customers":                         webtemplates.AdminTabDashboard,
		webtemplates.AdminTabProducts:       webtemplates.AdminTabProducts,
		" " + webtemplates.AdminTabMessages: webtemplates.AdminTabMessages,
	}
	for raw, want := range tests {
		if got := parseTab(raw); got != want {
			t.Fatalf("parseTab(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestSearchByNameIgnoresCase(t *testing.T) {
	t.Parallel()

	products := catalog.Default().Products()
	got := searchByName(products, "SHIRT")
	if len(got) == 0 {
		t.Fatalf("expected shirt matches")
	}
	for _, p := range got {
		if !strings.Contains(strings.ToLower(p.Name), "shirt") {
			t.Fatalf("unexpected match %q", p.Name)
		}
	}
	if len(searchByName(products, "")) != len(products) {
		t.Fatalf("empty query should keep every product")
	}
}
