package rsvp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rileyhilliard/invite/internal/errors"
	"github.com/rileyhilliard/invite/internal/logger"
)

// TimestampLayout matches pt-BR toLocaleString output: 16/08/2025, 19:30:00.
const TimestampLayout = "02/01/2006, 15:04:05"

// DefaultTimeout bounds the single RSVP request.
const DefaultTimeout = 15 * time.Second

// Payload is the JSON body posted to the form endpoint.
// Field names are the ones the form owner receives in their notification e-mail.
type Payload struct {
	Subject     string `json:"_subject"`
	Name        string `json:"nome"`
	Phone       string `json:"telefone"`
	Guests      int    `json:"convidados"`
	ConfirmedAt string `json:"data_confirmacao"`
	Event       string `json:"evento"`
}

// ClientConfig holds the endpoint and the fixed event metadata sent with every RSVP.
type ClientConfig struct {
	Endpoint      string
	SubjectPrefix string
	EventLabel    string
	Timeout       time.Duration
}

// Client posts RSVP records to a form-collection endpoint.
// It makes exactly one request per Submit and never retries.
type Client struct {
	cfg  ClientConfig
	http *http.Client
	now  func() time.Time
	log  logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client (tests point it at httptest servers).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithClock replaces the clock used for the confirmation timestamp.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient creates a client for cfg.
func NewClient(cfg ClientConfig, opts ...Option) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	c := &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		now:  time.Now,
		log:  logger.Noop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BuildPayload stamps r with the current local time and the event metadata.
func (c *Client) BuildPayload(r Record) Payload {
	name := NormalizeName(r.Name)
	return Payload{
		Subject:     c.cfg.SubjectPrefix + name,
		Name:        name,
		Phone:       r.Phone,
		Guests:      r.Guests,
		ConfirmedAt: c.now().Format(TimestampLayout),
		Event:       c.cfg.EventLabel,
	}
}

// Submit posts r once. Any 2xx status is success; every other status and
// any transport failure is returned as an ErrSubmit error.
func (c *Client) Submit(ctx context.Context, r Record) error {
	body, err := json.Marshal(c.BuildPayload(r))
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrSubmit,
			"Failed to encode RSVP",
			"This shouldn't happen - please report this bug")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrSubmit,
			"Invalid RSVP endpoint: "+c.cfg.Endpoint,
			"Check rsvp.endpoint in your config")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.log.Debug("posting rsvp for %q (%d guests) to %s", r.Name, r.Guests, c.cfg.Endpoint)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("rsvp request failed: %v", err)
		return errors.WrapWithCode(err, errors.ErrSubmit,
			"Could not reach the RSVP service",
			"Check your internet connection and try again")
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error("rsvp endpoint returned %s", resp.Status)
		return errors.New(errors.ErrSubmit,
			fmt.Sprintf("RSVP service answered %s", resp.Status),
			"Try again in a moment")
	}

	c.log.Info("rsvp accepted for %q in %s", r.Name, time.Since(start).Round(time.Millisecond))
	return nil
}
