// Package loader fetches text resources such as shader sources.
//
// A resource is addressed by URL. http and https URLs go through a
// retryablehttp client; "embed:" URLs read from an embedded file system;
// anything else is a path under the loader's document root, so "/shader/a.expr"
// and "shader/a.expr" name the same file.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// EmbedScheme prefixes URLs served from the embedded file system.
const EmbedScheme = "embed:"

// ResourceLoadError reports a resource that could not be fetched.
type ResourceLoadError struct {
	URL string
	// Status is the HTTP status code, or 0 for non-HTTP failures.
	Status int
	Err    error
}

func (e *ResourceLoadError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("loader: load %s: http status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("loader: load %s: %v", e.URL, e.Err)
}

func (e *ResourceLoadError) Unwrap() error { return e.Err }

// ErrEmbedUnavailable is returned for "embed:" URLs when no embedded file
// system was configured.
var ErrEmbedUnavailable = errors.New("no embedded file system")

// Loader fetches text resources. It is safe for concurrent use.
type Loader struct {
	root     string
	files    fs.FS
	embedded fs.FS
	client   *retryablehttp.Client
	log      *zap.Logger
}

type Option func(*Loader)

// WithRoot sets the document root for path URLs. Defaults to ".".
func WithRoot(dir string) Option {
	return func(l *Loader) {
		l.root = dir
		l.files = os.DirFS(dir)
	}
}

// WithFS serves path URLs from fsys instead of the OS file system.
func WithFS(fsys fs.FS) Option {
	return func(l *Loader) {
		l.root = ""
		l.files = fsys
	}
}

// WithEmbedded serves "embed:" URLs from fsys.
func WithEmbedded(fsys fs.FS) Option {
	return func(l *Loader) { l.embedded = fsys }
}

// WithRetries sets the number of HTTP retries. Defaults to 0.
func WithRetries(n int) Option {
	return func(l *Loader) {
		if n < 0 {
			n = 0
		}
		l.client.RetryMax = n
	}
}

// WithTimeout bounds each HTTP attempt. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) { l.client.HTTPClient.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) {
		if c != nil {
			l.client.HTTPClient = c
		}
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// New creates a loader. By default it does not retry and applies no timeout.
func New(opts ...Option) *Loader {
	client := retryablehttp.NewClient()
	client.RetryMax = 0
	client.HTTPClient = &http.Client{}
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	l := &Loader{
		root:   ".",
		files:  os.DirFS("."),
		client: client,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.client.Logger = leveledLogger{s: l.log.Named("http").Sugar()}
	return l
}

// Load fetches url and returns its contents as text. It blocks until the
// resource is read, the request fails, or ctx is canceled.
func (l *Loader) Load(ctx context.Context, url string) (string, error) {
	start := time.Now()
	var (
		text string
		err  error
	)
	switch {
	case isHTTP(url):
		text, err = l.loadHTTP(ctx, url)
	case strings.HasPrefix(url, EmbedScheme):
		if l.embedded == nil {
			err = &ResourceLoadError{URL: url, Err: ErrEmbedUnavailable}
			break
		}
		text, err = readFS(l.embedded, url, strings.TrimPrefix(url, EmbedScheme))
	default:
		text, err = readFS(l.files, url, url)
	}
	if err != nil {
		l.log.Debug("resource load failed", zap.String("url", url), zap.Error(err))
		return "", err
	}
	l.log.Debug("resource loaded",
		zap.String("url", url),
		zap.Int("bytes", len(text)),
		zap.Duration("took", time.Since(start)))
	return text, nil
}

// LocalPath returns the OS path a URL resolves to, if it is a path URL under
// an OS document root.
func (l *Loader) LocalPath(url string) (string, bool) {
	if l.root == "" || isHTTP(url) || strings.HasPrefix(url, EmbedScheme) {
		return "", false
	}
	name, err := cleanName(url)
	if err != nil {
		return "", false
	}
	return filepath.Join(l.root, filepath.FromSlash(name)), true
}

func isHTTP(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

func readFS(fsys fs.FS, url, name string) (string, error) {
	name, err := cleanName(name)
	if err != nil {
		return "", &ResourceLoadError{URL: url, Err: err}
	}
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", &ResourceLoadError{URL: url, Err: err}
	}
	return string(b), nil
}

func cleanName(name string) (string, error) {
	name = strings.TrimPrefix(name, "file://")
	name = path.Clean("/" + filepath.ToSlash(name))
	name = strings.TrimPrefix(name, "/")
	if !fs.ValidPath(name) || name == "." {
		return "", fmt.Errorf("invalid resource path %q", name)
	}
	return name, nil
}

func (l *Loader) loadHTTP(ctx context.Context, url string) (string, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &ResourceLoadError{URL: url, Err: err}
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return "", &ResourceLoadError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &ResourceLoadError{
			URL:    url,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("unexpected status %s", resp.Status),
		}
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ResourceLoadError{URL: url, Err: err}
	}
	return string(b), nil
}

// leveledLogger adapts zap to retryablehttp.LeveledLogger.
type leveledLogger struct {
	s *zap.SugaredLogger
}

func (l leveledLogger) Error(msg string, kv ...interface{}) { l.s.Errorw(msg, kv...) }
func (l leveledLogger) Info(msg string, kv ...interface{})  { l.s.Infow(msg, kv...) }
func (l leveledLogger) Debug(msg string, kv ...interface{}) { l.s.Debugw(msg, kv...) }
func (l leveledLogger) Warn(msg string, kv ...interface{})  { l.s.Warnw(msg, kv...) }
