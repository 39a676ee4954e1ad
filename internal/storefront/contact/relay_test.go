package contact

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelayPostsURLEncodedForm(t *testing.T) {
	t.Parallel()

	var got url.Values
	var contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		got, _ = url.ParseQuery(string(body))
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	relay, err := NewRelay(srv.URL+"/", srv.Client())
	require.NoError(t, err)
	require.NoError(t, relay.Deliver(context.Background(), validSubmission()))

	assert.Equal(t, "application/x-www-form-urlencoded", contentType)
	assert.Equal(t, "contact", got.Get("form-name"))
	assert.Equal(t, "Jane", got.Get("name"))
	assert.Equal(t, "jane@example.com", got.Get("email"))
	assert.Equal(t, "Sizing", got.Get("subject"))
}

func TestRelayClassifiesStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status  int
		wantErr bool
	}{
		{status: http.StatusOK},
		{status: http.StatusNoContent},
		{status: http.StatusBadRequest, wantErr: true},
		{status: http.StatusInternalServerError, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
			}))
			t.Cleanup(srv.Close)

			relay, err := NewRelay(srv.URL, srv.Client())
			require.NoError(t, err)
			err = relay.Deliver(context.Background(), validSubmission())
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrDeliveryFailed)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRelayNetworkFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	relay, err := NewRelay(endpoint, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, relay.Deliver(context.Background(), validSubmission()), ErrDeliveryFailed)
}

func TestNewRelayRejectsRelativeEndpoints(t *testing.T) {
	t.Parallel()

	for _, endpoint := range []string{"", "/", "ftp://example.com", "http://"} {
		_, err := NewRelay(endpoint, nil)
		assert.Error(t, err, endpoint)
	}
	relay, err := NewRelay(" https://forms.example.com/ ", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://forms.example.com/", relay.Endpoint())
}
