package rsvp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rileyhilliard/invite/internal/errors"
	"github.com/rileyhilliard/invite/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 8, 1, 9, 5, 7, 0, time.UTC)

func testClient(endpoint string, opts ...Option) *Client {
	cfg := ClientConfig{
		Endpoint:      endpoint,
		SubjectPrefix: "✅ Nova Confirmação - ",
		EventLabel:    "Formatura Kieran Rocha 🎓",
	}
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewClient(cfg, opts...)
}

func TestBuildPayload(t *testing.T) {
	c := testClient("http://example.invalid")

	p := c.BuildPayload(Record{Name: "Ana", Phone: "(51) 99999-9999", Guests: 3})

	assert.Equal(t, "✅ Nova Confirmação - Ana", p.Subject)
	assert.Equal(t, "Ana", p.Name)
	assert.Equal(t, "(51) 99999-9999", p.Phone)
	assert.Equal(t, 3, p.Guests)
	assert.Equal(t, "01/08/2025, 09:05:07", p.ConfirmedAt)
	assert.Equal(t, "Formatura Kieran Rocha 🎓", p.Event)
}

func TestPayload_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(Payload{Subject: "s", Name: "n", Phone: "p", Guests: 2, ConfirmedAt: "d", Event: "e"})
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "s", m["_subject"])
	assert.Equal(t, "n", m["nome"])
	assert.Equal(t, "p", m["telefone"])
	assert.Equal(t, float64(2), m["convidados"])
	assert.Equal(t, "d", m["data_confirmacao"])
	assert.Equal(t, "e", m["evento"])
}

func TestSubmit_Success(t *testing.T) {
	var hits int32
	var got Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	log := logger.NewBufferLogger()
	c := testClient(srv.URL, WithHTTPClient(srv.Client()), WithLogger(log))

	err := c.Submit(context.Background(), Record{Name: "Ana", Phone: "(51) 99999-9999", Guests: 2})

	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, 2, got.Guests)
	assert.True(t, log.HasLevel("info"))
}

func TestSubmit_AnyTwoHundredIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := testClient(srv.URL, WithHTTPClient(srv.Client()))
	assert.NoError(t, c.Submit(context.Background(), Record{Name: "Ana", Phone: "5199999999", Guests: 1}))
}

func TestSubmit_HTTPFailure(t *testing.T) {
	tests := []int{http.StatusBadRequest, http.StatusTeapot, http.StatusInternalServerError}

	for _, status := range tests {
		t.Run(http.StatusText(status), func(t *testing.T) {
			var hits int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&hits, 1)
				w.WriteHeader(status)
			}))
			defer srv.Close()

			c := testClient(srv.URL, WithHTTPClient(srv.Client()))
			err := c.Submit(context.Background(), Record{Name: "Ana", Phone: "5199999999", Guests: 1})

			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrSubmit))
			assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "no retries")
		})
	}
}

func TestSubmit_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := testClient(url)
	err := c.Submit(context.Background(), Record{Name: "Ana", Phone: "5199999999", Guests: 1})

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrSubmit))
	assert.Contains(t, err.Error(), "Could not reach the RSVP service")
}

func TestSubmit_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := testClient(srv.URL, WithHTTPClient(srv.Client()))
	err := c.Submit(ctx, Record{Name: "Ana", Phone: "5199999999", Guests: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSubmit_InvalidEndpoint(t *testing.T) {
	c := testClient("://bad")
	err := c.Submit(context.Background(), Record{Name: "Ana", Phone: "5199999999", Guests: 1})

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrSubmit))
}

func TestNewClient_DefaultTimeout(t *testing.T) {
	c := NewClient(ClientConfig{Endpoint: "http://x"})
	assert.Equal(t, DefaultTimeout, c.http.Timeout)
}

func TestBuildPayload_NormalizesName(t *testing.T) {
	c := testClient("http://example.invalid")

	p := c.BuildPayload(Record{Name: "  José ", Phone: "(51) 99999-9999", Guests: 1})

	assert.Equal(t, "José", p.Name)
	assert.Equal(t, "✅ Nova Confirmação - José", p.Subject)
}
