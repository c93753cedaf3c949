// Package request issues HTTP requests described by Item values. It owns the
// shared nonce for signed calls and the scoped logger for request tracing.
// Every call is a single round trip; retries and rate limiting are left to
// the caller.
package request

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httputil"
	"sync/atomic"
	"time"

	"github.com/buger/jsonparser"
	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/cexgo/cexio/common/timedmutex"
	"github.com/cexgo/cexio/nonce"
)

const (
	// MaxRequestJobs limits the number of in-flight requests sharing one
	// Requester.
	MaxRequestJobs = 50
	// DefaultMutexLockTimeout bounds how long the nonce FIFO lock may be
	// held before it self-releases.
	DefaultMutexLockTimeout = 50 * time.Millisecond

	userAgent = "User-Agent"
)

var (
	errRequestSystemIsNil   = errors.New("request system is nil")
	errMaxRequestJobs       = errors.New("max request jobs reached")
	errRequestFunctionIsNil = errors.New("request function is nil")
	errRequestItemNil       = errors.New("request item is nil")
	errInvalidPath          = errors.New("invalid path")
)

// Generate defers request generation to the last possible moment so the
// nonce and signature are produced at send time.
type Generate func() (*Item, error)

// Item describes a single outbound request.
type Item struct {
	Method        string
	Path          string
	Headers       map[string]string
	Body          io.Reader
	Result        interface{}
	AuthRequest   bool
	NonceEnabled  bool
	Verbose       bool
	HTTPDebugging bool
}

// Requester sends Items over a shared HTTP client.
type Requester struct {
	HTTPClient *http.Client
	Name       string
	UserAgent  string
	Nonce      nonce.Nonce
	log        *logrus.Logger
	timedLock  *timedmutex.TimedMutex
	jobs       int32
}

// New returns a new Requester. A nil logger silences request tracing.
func New(name string, httpRequester *http.Client, l *logrus.Logger) *Requester {
	if l == nil {
		l = logrus.New()
		l.SetOutput(io.Discard)
	}
	return &Requester{
		HTTPClient: httpRequester,
		Name:       name,
		log:        l,
		timedLock:  timedmutex.New(DefaultMutexLockTimeout),
	}
}

// SendPayload generates and sends an HTTP request, decoding the response
// into the item's Result when one is supplied.
func (r *Requester) SendPayload(ctx context.Context, newRequest Generate) error {
	if r == nil {
		return errRequestSystemIsNil
	}

	if newRequest == nil {
		return errRequestFunctionIsNil
	}

	if atomic.LoadInt32(&r.jobs) >= MaxRequestJobs {
		r.timedLock.UnlockIfLocked()
		return errMaxRequestJobs
	}

	atomic.AddInt32(&r.jobs, 1)
	err := r.doRequest(ctx, newRequest)
	atomic.AddInt32(&r.jobs, -1)
	r.timedLock.UnlockIfLocked()

	return err
}

// validateRequest validates the requester item fields
func (i *Item) validateRequest(ctx context.Context, r *Requester) (*http.Request, error) {
	if i == nil {
		return nil, errRequestItemNil
	}

	if i.Path == "" {
		return nil, errInvalidPath
	}

	if !i.NonceEnabled {
		r.timedLock.LockForDuration()
	}

	req, err := http.NewRequestWithContext(ctx, i.Method, i.Path, i.Body)
	if err != nil {
		return nil, err
	}

	if i.HTTPDebugging {
		// Err not evaluated due to validation check above
		dump, _ := httputil.DumpRequestOut(req, !i.AuthRequest)
		r.log.Debugf("DumpRequest:\n%s", dump)
	}

	for k, v := range i.Headers {
		req.Header.Add(k, v)
	}

	if r.UserAgent != "" && req.Header.Get(userAgent) == "" {
		req.Header.Add(userAgent, r.UserAgent)
	}

	return req, nil
}

func (r *Requester) doRequest(ctx context.Context, newRequest Generate) error {
	p, err := newRequest()
	if err != nil {
		return err
	}

	req, err := p.validateRequest(ctx, r)
	if err != nil {
		return err
	}

	id, _ := uuid.NewV4()
	l := r.log.WithField("request_id", id.String())
	l.Infof("%s %s %s", r.Name, p.Method, p.Path)
	if p.Verbose {
		for k, d := range req.Header {
			l.Debugf("%s request header [%s]: %s", r.Name, k, d)
		}
		if p.Body != nil && !p.AuthRequest {
			l.Debugf("%s request body: %v", r.Name, p.Body)
		}
	}

	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s request failed", r.Name)
	}
	defer resp.Body.Close()

	contents, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "%s failed to read response body", r.Name)
	}

	if p.Verbose {
		l.Debugf("HTTP status: %s, Code: %v", resp.Status, resp.StatusCode)
		l.Debugf("%s raw response: %s", r.Name, string(contents))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode > http.StatusAccepted {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Message:    remoteMessage(contents),
			Body:       contents,
		}
	}

	if msg := remoteMessage(contents); msg != "" {
		return &RemoteError{Message: msg, Body: contents}
	}

	if p.Result != nil {
		if err := json.Unmarshal(contents, p.Result); err != nil {
			return errors.Wrapf(err, "%s invalid JSON response", r.Name)
		}
	}
	return nil
}

// GetNonceMilli returns a millisecond nonce for signed requests. It locks
// and enforces FIFO ordering so concurrent signed requests reach the
// exchange with strictly increasing nonces.
func (r *Requester) GetNonceMilli() nonce.Value {
	r.timedLock.LockForDuration()
	if r.Nonce.Get() == 0 {
		r.Nonce.Set(time.Now().UnixMilli())
		return r.Nonce.Get()
	}
	return r.Nonce.GetInc()
}

// remoteMessage extracts the error field CEX.IO embeds in failed response
// bodies, whatever the HTTP status code.
func remoteMessage(contents []byte) string {
	msg, err := jsonparser.GetString(contents, "error")
	if err != nil {
		return ""
	}
	return msg
}
