package adapter

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// placeholderOrigin fills in the authority when the event carries no usable
// referer. The event has no true origin, but application code inspecting
// request.URL still needs a well-formed absolute URL.
const placeholderOrigin = "http://localhost"

// buildRequest maps an invocation event onto an *http.Request. No network
// I/O happens here; the request exists only to be served in memory.
func buildRequest(ctx context.Context, event events.APIGatewayProxyRequest, basePath string) (*http.Request, error) {
	method := event.HTTPMethod
	if method == "" {
		method = http.MethodGet
	}

	path := event.Path
	if path == "" {
		path = "/"
	}
	// Best-effort prefix strip; a non-matching path is not an error.
	if basePath != "" && strings.HasPrefix(path, basePath) {
		path = strings.TrimPrefix(path, basePath)
		if path == "" {
			path = "/"
		}
	}

	u, err := url.Parse(originFor(event.Headers) + path)
	if err != nil {
		return nil, fmt.Errorf("invalid request path %q: %w", path, err)
	}
	// Explicit query parameters are appended; a query string already
	// embedded in the path is kept as parsed, never merged with them.
	if len(event.QueryStringParameters) > 0 {
		qs := url.Values{}
		for k, v := range event.QueryStringParameters {
			qs.Set(k, v)
		}
		if u.RawQuery != "" {
			u.RawQuery += "&" + qs.Encode()
		} else {
			u.RawQuery = qs.Encode()
		}
	}

	var body io.Reader
	if method != http.MethodGet && method != http.MethodHead && event.Body != "" {
		if event.IsBase64Encoded {
			raw, err := base64.StdEncoding.DecodeString(event.Body)
			if err != nil {
				return nil, fmt.Errorf("invalid base64 request body: %w", err)
			}
			body = bytes.NewReader(raw)
		} else {
			body = strings.NewReader(event.Body)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	for k, v := range event.Headers {
		req.Header.Set(k, v)
	}
	// Multi-value headers replace the flat value for the same name so
	// duplicates are preserved instead of doubled up.
	for k, values := range event.MultiValueHeaders {
		req.Header.Del(k)
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	return req, nil
}

// originFor reuses the referer's origin when one is present and parseable.
func originFor(headers map[string]string) string {
	for k, v := range headers {
		if !strings.EqualFold(k, "referer") {
			continue
		}
		if ref, err := url.Parse(v); err == nil && ref.Scheme != "" && ref.Host != "" {
			return ref.Scheme + "://" + ref.Host
		}
	}
	return placeholderOrigin
}
