package adapter

import (
	"bytes"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// responseRecorder captures status, headers and body written by the wrapped
// application. It is the in-memory stand-in for a network connection.
type responseRecorder struct {
	header http.Header
	body   bytes.Buffer
	status int
	wrote  bool
}

func newRecorder() *responseRecorder {
	return &responseRecorder{header: http.Header{}, status: http.StatusOK}
}

func (r *responseRecorder) Header() http.Header {
	return r.header
}

func (r *responseRecorder) WriteHeader(status int) {
	if r.wrote {
		return
	}
	r.status = status
	r.wrote = true
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if !r.wrote {
		r.WriteHeader(http.StatusOK)
	}
	return r.body.Write(b)
}

// buildResponse maps a recorded application response onto the proxy response
// envelope. Bodies whose content type matches an entry of binaryTypes
// (substring match) are base64-encoded and flagged as such.
func buildResponse(rec *responseRecorder, binaryTypes []string) events.APIGatewayProxyResponse {
	headers := make(map[string]string, len(rec.header))
	multi := make(map[string][]string, len(rec.header))
	for name, values := range rec.header {
		if len(values) > 0 {
			headers[name] = values[len(values)-1]
		}
		multi[name] = append([]string(nil), values...)
	}

	resp := events.APIGatewayProxyResponse{
		StatusCode:        rec.status,
		Headers:           headers,
		MultiValueHeaders: multi,
	}

	if isBinary(rec.header.Get("Content-Type"), binaryTypes) {
		resp.Body = base64.StdEncoding.EncodeToString(rec.body.Bytes())
		resp.IsBase64Encoded = true
	} else {
		resp.Body = rec.body.String()
	}
	return resp
}

func isBinary(contentType string, binaryTypes []string) bool {
	if contentType == "" {
		return false
	}
	contentType = strings.ToLower(contentType)
	for _, t := range binaryTypes {
		if strings.Contains(contentType, strings.ToLower(t)) {
			return true
		}
	}
	return false
}
