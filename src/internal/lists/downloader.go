package lists

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/maksimkurb/ikuai-ipgroups/src/internal/config"
	apperrors "github.com/maksimkurb/ikuai-ipgroups/src/internal/errors"
	"github.com/maksimkurb/ikuai-ipgroups/src/internal/hashing"
	"github.com/maksimkurb/ikuai-ipgroups/src/internal/log"
)

type FetchErrorKind int

const (
	FetchTimeout FetchErrorKind = iota
	FetchHTTPStatus
	FetchTransport
)

func (k FetchErrorKind) String() string {
	switch k {
	case FetchTimeout:
		return "timeout"
	case FetchHTTPStatus:
		return "http status"
	default:
		return "transport"
	}
}

// FetchError describes why a source could not be downloaded.
// It matches apperrors.ErrFetch with errors.Is.
type FetchError struct {
	Kind       FetchErrorKind
	URL        string
	StatusCode int
	Cause      error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case FetchTimeout:
		return fmt.Sprintf("request to %s timed out: %v", e.URL, e.Cause)
	case FetchHTTPStatus:
		return fmt.Sprintf("request to %s failed with HTTP status %d", e.URL, e.StatusCode)
	default:
		return fmt.Sprintf("request to %s failed: %v", e.URL, e.Cause)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

func (e *FetchError) Is(target error) bool {
	t, ok := target.(*apperrors.Error)
	return ok && t.Code == apperrors.ErrCodeFetch
}

// Fetcher downloads source lists. One attempt per call, nothing is cached.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// NewFetcher creates a fetcher using the timeout and user agent from general settings.
func NewFetcher(general *config.GeneralConfig) *Fetcher {
	timeout := time.Duration(config.DefaultTimeoutSeconds) * time.Second
	userAgent := config.DefaultUserAgent
	if general != nil {
		if general.TimeoutSeconds > 0 {
			timeout = time.Duration(general.TimeoutSeconds) * time.Second
		}
		if general.UserAgent != "" {
			userAgent = general.UserAgent
		}
	}

	return NewFetcherWithClient(&http.Client{}, timeout, userAgent)
}

// NewFetcherWithClient creates a fetcher with a custom HTTP client.
func NewFetcherWithClient(client *http.Client, timeout time.Duration, userAgent string) *Fetcher {
	return &Fetcher{
		client:    client,
		timeout:   timeout,
		userAgent: userAgent,
	}
}

// Fetch performs one GET request and returns the response body as text.
// Every failure is returned as *FetchError.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{Kind: FetchTransport, URL: url, Cause: err}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", classifyFetchError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{Kind: FetchHTTPStatus, URL: url, StatusCode: resp.StatusCode}
	}

	bodyProxy := hashing.NewMD5ReaderProxy(resp.Body)
	content, err := io.ReadAll(bodyProxy)
	if err != nil {
		return "", classifyFetchError(url, err)
	}

	log.Debugf("Fetched %s: %d bytes, md5 %s", url, bodyProxy.Size(), bodyProxy.GetChecksum())
	return string(content), nil
}

func classifyFetchError(url string, err error) *FetchError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &FetchError{Kind: FetchTimeout, URL: url, Cause: err}
	}
	return &FetchError{Kind: FetchTransport, URL: url, Cause: err}
}
