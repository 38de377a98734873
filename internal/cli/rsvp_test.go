package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/rileyhilliard/invite/internal/errors"
	"github.com/rileyhilliard/invite/internal/rsvp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// formServer records every payload it receives and answers with status.
func formServer(t *testing.T, status int) (*httptest.Server, *[]rsvp.Payload, *int32) {
	t.Helper()
	var payloads []rsvp.Payload
	var calls int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var p rsvp.Payload
		if assert.NoError(t, json.NewDecoder(r.Body).Decode(&p)) {
			payloads = append(payloads, p)
		}
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	return srv, &payloads, &calls
}

func endpointConfig(t *testing.T, url string) string {
	return writeConfig(t, "rsvp:\n  endpoint: "+url+"\n")
}

func TestRSVP_Success(t *testing.T) {
	srv, payloads, _ := formServer(t, http.StatusOK)
	path := endpointConfig(t, srv.URL)

	res := runCLI(t, "--config", path, "rsvp",
		"--name", "  Ana Souza ", "--phone", "51999999999", "--guests", "2")

	require.NoError(t, res.err)
	require.Len(t, *payloads, 1)

	p := (*payloads)[0]
	assert.Equal(t, "Ana Souza", p.Name)
	assert.Equal(t, "(51) 99999-9999", p.Phone)
	assert.Equal(t, 2, p.Guests)
	assert.Equal(t, "✅ Nova Confirmação - Ana Souza", p.Subject)
	assert.Equal(t, "Formatura Kieran Rocha 🎓", p.Event)

	assert.Contains(t, res.stdout, "Presença registrada")
	assert.Contains(t, res.stdout, "Telefone: (51) 99999-9999")
	assert.Contains(t, res.stderr, "Enviando confirmação")
}

func TestRSVP_DefaultsToOneGuest(t *testing.T) {
	srv, payloads, _ := formServer(t, http.StatusOK)
	path := endpointConfig(t, srv.URL)

	res := runCLI(t, "--config", path, "rsvp", "--name", "Ana", "--phone", "(51) 9999-9999")

	require.NoError(t, res.err)
	require.Len(t, *payloads, 1)
	assert.Equal(t, 1, (*payloads)[0].Guests)
	assert.Equal(t, "(51) 9999-9999", (*payloads)[0].Phone)
}

func TestRSVP_JSON(t *testing.T) {
	srv, _, _ := formServer(t, http.StatusCreated)
	path := endpointConfig(t, srv.URL)

	res := runCLI(t, "--config", path, "--json", "rsvp",
		"--name", "Ana Souza", "--phone", "51999999999")

	require.NoError(t, res.err)
	assert.Empty(t, res.stderr, "no spinner in JSON mode")

	var env struct {
		Success bool       `json:"success"`
		Data    rsvpResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &env))
	assert.True(t, env.Success)
	assert.Equal(t, "Ana Souza", env.Data.Record.Name)
	assert.Equal(t, "(51) 99999-9999", env.Data.Record.Phone)
	assert.Equal(t, 1, env.Data.Record.Guests)
	assert.False(t, env.Data.ConfirmedAt.IsZero())
}

func TestRSVP_ValidationSendsNothing(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{
			name:    "missing name",
			args:    []string{"--phone", "51999999999"},
			wantMsg: rsvp.MsgNameRequired,
		},
		{
			name:    "missing phone",
			args:    []string{"--name", "Ana"},
			wantMsg: rsvp.MsgPhoneRequired,
		},
		{
			name:    "short phone",
			args:    []string{"--name", "Ana", "--phone", "519999"},
			wantMsg: rsvp.MsgPhoneInvalid,
		},
		{
			name:    "long phone",
			args:    []string{"--name", "Ana", "--phone", "519999999998"},
			wantMsg: rsvp.MsgPhoneInvalid,
		},
		{
			name:    "too many guests",
			args:    []string{"--name", "Ana", "--phone", "51999999999", "--guests", "6"},
			wantMsg: rsvp.MsgGuestsRange,
		},
		{
			name:    "zero guests",
			args:    []string{"--name", "Ana", "--phone", "51999999999", "--guests", "0"},
			wantMsg: rsvp.MsgGuestsRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _, calls := formServer(t, http.StatusOK)
			path := endpointConfig(t, srv.URL)

			res := runCLI(t, append([]string{"--config", path, "rsvp"}, tt.args...)...)

			require.Error(t, res.err)
			assert.True(t, errors.IsCode(res.err, errors.ErrValidation))
			assert.Contains(t, res.err.Error(), tt.wantMsg)
			assert.Equal(t, int32(0), atomic.LoadInt32(calls))
		})
	}
}

func TestRSVP_ServerErrorIsSubmitError(t *testing.T) {
	srv, _, calls := formServer(t, http.StatusInternalServerError)
	path := endpointConfig(t, srv.URL)

	res := runCLI(t, "--config", path, "rsvp", "--name", "Ana", "--phone", "51999999999")

	require.Error(t, res.err)
	assert.True(t, errors.IsCode(res.err, errors.ErrSubmit))
	assert.Equal(t, int32(1), atomic.LoadInt32(calls), "no retry")
}

func TestValidationErrorOrder(t *testing.T) {
	err := validationError(rsvp.FieldErrors{
		rsvp.FieldGuests: rsvp.MsgGuestsRange,
		rsvp.FieldName:   rsvp.MsgNameRequired,
	})

	msg := err.Error()
	require.Contains(t, msg, "name:")
	require.Contains(t, msg, "guests:")
	assert.Less(t, strings.Index(msg, "name:"), strings.Index(msg, "guests:"))
}
