// Package adapter runs standard http.Handler applications inside AWS Lambda
// behind the API Gateway proxy integration. It translates the flat
// invocation event into an *http.Request, dispatches it to the wrapped
// application with a timeout, and translates the captured response back into
// the proxy response envelope, base64-encoding binary bodies.
package adapter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"
)

// DefaultTimeout bounds a single dispatch when Config.Timeout is unset.
const DefaultTimeout = 30 * time.Second

// DefaultBinaryTypes lists the content-type fragments that trigger base64
// body encoding when Config.BinaryTypes is unset.
var DefaultBinaryTypes = []string{
	"application/octet-stream",
	"application/pdf",
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
	"audio/mpeg",
	"video/mp4",
	"font/woff",
	"font/woff2",
}

// Handler is the function signature expected by lambda.Start.
type Handler func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// Config holds adapter settings. It is captured once by New and never
// mutated afterwards; invocations share it read-only.
type Config struct {
	// Logger receives the structured invocation logs. Defaults to the
	// logrus standard logger.
	Logger logrus.FieldLogger

	// DisableLogging turns off the per-invocation request/completion lines.
	// Errors are still logged.
	DisableLogging bool

	// Timeout bounds the wrapped application call. Defaults to DefaultTimeout.
	Timeout time.Duration

	// BasePath is a prefix stripped from incoming paths before they reach
	// the wrapped application's routing. Non-matching paths pass through.
	BasePath string

	// BinaryTypes are content-type substrings whose response bodies are
	// base64-encoded. Defaults to DefaultBinaryTypes.
	BinaryTypes []string

	// CORS, when non-nil, installs a CORS policy around the wrapped
	// application at creation time. Nil disables CORS handling.
	CORS *CORSConfig
}

type adapter struct {
	app         http.Handler
	logger      logrus.FieldLogger
	logging     bool
	timeout     time.Duration
	basePath    string
	binaryTypes []string
}

// New wraps an http.Handler application into a Lambda proxy handler.
func New(app http.Handler, cfg Config) Handler {
	a := &adapter{
		app:         app,
		logger:      cfg.Logger,
		logging:     !cfg.DisableLogging,
		timeout:     cfg.Timeout,
		basePath:    cfg.BasePath,
		binaryTypes: cfg.BinaryTypes,
	}
	if a.logger == nil {
		a.logger = logrus.StandardLogger()
	}
	if a.timeout <= 0 {
		a.timeout = DefaultTimeout
	}
	if a.binaryTypes == nil {
		a.binaryTypes = DefaultBinaryTypes
	}
	if cfg.CORS != nil {
		a.app = CORS(cfg.CORS)(a.app)
	}
	return a.invoke
}

// invoke handles one invocation end to end. Every event yields exactly one
// response; failures are mapped to an error envelope rather than returned to
// the runtime, so the platform never retries on application errors.
func (a *adapter) invoke(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	start := time.Now()

	if event.HTTPMethod == "" {
		err := &Error{Status: http.StatusBadRequest, Message: "missing httpMethod in invocation event"}
		a.logger.WithField("path", event.Path).Warn("Rejected malformed invocation event")
		return errorResponse(err), nil
	}

	// Browsers probe for this on every host; answer without waking the app.
	if event.Path == "/favicon.ico" {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusNoContent,
			Headers:    map[string]string{},
			Body:       "",
		}, nil
	}

	if a.logging {
		fields := logrus.Fields{
			"method":  event.HTTPMethod,
			"path":    event.Path,
			"query":   event.QueryStringParameters,
			"headers": event.Headers,
		}
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			fields["aws_request_id"] = lc.AwsRequestID
		}
		a.logger.WithFields(fields).Info("Invocation received")
	}

	resp, err := a.dispatch(ctx, event)
	if err != nil {
		a.logger.WithFields(logrus.Fields{
			"method": event.HTTPMethod,
			"path":   event.Path,
			"error":  err.Error(),
		}).Error("Invocation failed")
		resp = errorResponse(err)
	}

	if a.logging {
		a.logger.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"latency_ms":  float64(time.Since(start).Nanoseconds()) / 1e6,
		}).Info("Invocation completed")
	}
	return resp, nil
}

// dispatch builds the request, runs the wrapped application and races it
// against the configured timeout. On timeout the in-flight call is not
// cancelled; it keeps running and its eventual result is discarded. The
// channels are buffered so the goroutine never blocks on an abandoned send.
func (a *adapter) dispatch(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req, err := buildRequest(ctx, event, a.basePath)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	done := make(chan *responseRecorder, 1)
	fail := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				if e, ok := r.(error); ok {
					fail <- e
					return
				}
				fail <- fmt.Errorf("handler panic: %v", r)
			}
		}()
		rec := newRecorder()
		a.app.ServeHTTP(rec, req)
		done <- rec
	}()

	timer := time.NewTimer(a.timeout)
	defer timer.Stop()

	select {
	case rec := <-done:
		return buildResponse(rec, a.binaryTypes), nil
	case err := <-fail:
		return events.APIGatewayProxyResponse{}, err
	case <-timer.C:
		return events.APIGatewayProxyResponse{}, newTimeoutError(a.timeout)
	}
}
