package title

import (
	"context"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html/charset"

	"github.com/yellottyellott/chat-parser/internal/extract"
	"github.com/yellottyellott/chat-parser/internal/infra/httpclient"
	"github.com/yellottyellott/chat-parser/internal/ports"
)

const (
	DefaultTimeout     = 4 * time.Second
	DefaultMaxBodyRead = 1 << 20 // 1MB safety cap
)

var schemeRe = regexp.MustCompile(`(?i)^(?:https?|s?ftp)://`)

// Normalize prefixes rawURL with http:// unless it already starts with a
// known scheme.
func Normalize(rawURL string) string {
	if schemeRe.MatchString(rawURL) {
		return rawURL
	}
	return "http://" + rawURL
}

// Resolver fetches pages and reads their <title>.
type Resolver struct {
	Client      ports.HTTPClient
	Timeout     time.Duration
	MaxBodyRead int64
	Log         logrus.FieldLogger
}

// NewResolver returns a Resolver using client. A nil client gets a plain
// HTTP client bounded by timeout.
func NewResolver(client ports.HTTPClient, timeout time.Duration, log logrus.FieldLogger) *Resolver {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if client == nil {
		client = httpclient.New(timeout, "")
	}
	return &Resolver{
		Client:      client,
		Timeout:     timeout,
		MaxBodyRead: DefaultMaxBodyRead,
		Log:         log,
	}
}

// Resolve returns the title of the page at rawURL, or "" if the URL is not
// a web URL, the request fails, or the page has no title. It makes at most
// one request and never retries.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) string {
	u := Normalize(rawURL)
	log := r.logger().WithField("url", u)

	if !strings.HasPrefix(strings.ToLower(u), "http") {
		log.Debug("not a web url, skipping")
		return ""
	}
	log.Debug("fetching title")

	// Each fetch gets its own timeout budget.
	ctx, cancel := context.WithTimeout(ctx, r.timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		log.WithError(err).Info("building request failed")
		return ""
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		log.WithError(errors.Wrap(err, "GET request failed")).Info("fetching url failed")
		return ""
	}
	defer resp.Body.Close()

	t, err := r.parse(resp)
	if err != nil {
		log.WithError(err).Info("parsing page failed")
		return ""
	}
	return t
}

// parse reads the title from resp. Any failure, panics included, is an
// error.
func (r *Resolver) parse(resp *http.Response) (t string, err error) {
	defer func() {
		if p := recover(); p != nil {
			t, err = "", errors.Errorf("panic while parsing page: %v", p)
		}
	}()

	body, err := charset.NewReader(io.LimitReader(resp.Body, r.maxBodyRead()), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", errors.Wrap(err, "decode body")
	}

	t, _, err = extract.Title(body)
	if err != nil {
		return "", err
	}
	return t, nil
}

func (r *Resolver) timeout() time.Duration {
	if r.Timeout <= 0 {
		return DefaultTimeout
	}
	return r.Timeout
}

func (r *Resolver) maxBodyRead() int64 {
	if r.MaxBodyRead <= 0 {
		return DefaultMaxBodyRead
	}
	return r.MaxBodyRead
}

func (r *Resolver) logger() logrus.FieldLogger {
	if r.Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		return l
	}
	return r.Log
}
