// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-fire-crypt/internal/logger"
	"github.com/MKhiriev/go-fire-crypt/internal/utils"
	"github.com/rs/zerolog"
)

// RequestIDHeader carries the id that correlates a request with its log line.
const RequestIDHeader = "X-Request-Id"

// restTransport holds what both adapters need to issue a single request.
type restTransport struct {
	client     *utils.HTTPClient
	requestIDs *utils.RequestIDGenerator
	logger     *logger.Logger
	store      string
}

func newRestTransport(client *utils.HTTPClient, log *logger.Logger, store string) restTransport {
	return restTransport{
		client:     client,
		requestIDs: utils.NewRequestIDGenerator(),
		logger:     storeLogger(log, store),
		store:      store,
	}
}

// storeLogger tags every entry of log with the store kind.
func storeLogger(log *logger.Logger, store string) *logger.Logger {
	if log == nil {
		log = logger.Nop()
	}
	child := log.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("store", store)
	})
	return child
}

// requestLogger returns the logger attached to ctx, tagged with the store
// kind, or the store's own logger when ctx carries none.
func (t restTransport) requestLogger(ctx context.Context) *logger.Logger {
	log := logger.FromContext(ctx)
	if log.GetLevel() == zerolog.Disabled {
		return t.logger
	}
	return storeLogger(log, t.store)
}

// do issues exactly one request and returns the body of a 2xx response.
// A nil body sends no payload. op prefixes transport errors.
func (t restTransport) do(ctx context.Context, op, method, rawURL string, body []byte) ([]byte, error) {
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = t.requestIDs.Generate()
	}

	req := t.client.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, requestID)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	log := t.requestLogger(ctx)

	resp, err := req.Execute(method, rawURL)
	if err != nil {
		log.Debug().
			Str("method", method).
			Str("url", redactURL(rawURL)).
			Str("request_id", requestID).
			Err(err).
			Msg(op + " failed")
		return nil, fmt.Errorf("%s request: %w", op, err)
	}

	log.Debug().
		Str("method", method).
		Str("url", redactURL(rawURL)).
		Str("request_id", requestID).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg(op)

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// redactURL drops the query, which carries api keys and identity tokens.
func redactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	u.RawQuery = ""
	u.User = nil
	return u.String()
}

// normalizeBaseURL validates raw and returns it without a trailing slash.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// escapeSegments path-escapes every segment of a slash-joined path.
func escapeSegments(segments []string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return strings.Join(escaped, "/")
}
