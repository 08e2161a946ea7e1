package manifest

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"time"

	"github.com/arthur-debert/unbrew/pkg/errors"
	"github.com/arthur-debert/unbrew/pkg/logging"
	"github.com/arthur-debert/unbrew/pkg/types"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// Source produces manifest content. ok is false when the source has nothing
// to offer and the next one should be tried; err is always fatal.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (content []byte, ok bool, err error)
}

// LocalSource reads the manifest checked out in the repository.
type LocalSource struct {
	FS   types.FS
	Path string
}

func (s LocalSource) Name() string { return s.Path }

func (s LocalSource) Fetch(context.Context) ([]byte, bool, error) {
	content, err := s.FS.ReadFile(s.Path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, errors.ErrManifestFetch, "failed to read %s", s.Path)
	}
	return content, true, nil
}

// RemoteSource downloads the manifest over HTTP, retrying transient
// failures.
type RemoteSource struct {
	URL    string
	client *retryablehttp.Client
}

// maxManifestSize bounds the download. Homebrew's manifest is a few KiB.
const maxManifestSize = 1 << 20

// NewRemoteSource returns a source for url. retries is the number of
// additional attempts after the first; timeout bounds each attempt.
func NewRemoteSource(url string, timeout time.Duration, retries int) *RemoteSource {
	client := retryablehttp.NewClient()
	client.RetryMax = retries
	client.RetryWaitMin = 200 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.Logger = leveledLogger{logging.GetLogger("manifest.http")}
	if timeout > 0 {
		client.HTTPClient.Timeout = timeout
	}
	return &RemoteSource{URL: url, client: client}
}

func (s *RemoteSource) Name() string { return s.URL }

func (s *RemoteSource) Fetch(ctx context.Context) ([]byte, bool, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, false, errors.Wrapf(err, errors.ErrManifestFetch, "invalid manifest URL %s", s.URL)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, false, errors.Wrapf(err, errors.ErrManifestFetch, "failed to download %s", s.URL)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, false, errors.Newf(errors.ErrManifestFetch, "failed to download %s: %s", s.URL, resp.Status).
			WithDetail("status", resp.StatusCode)
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, maxManifestSize))
	if err != nil {
		return nil, false, errors.Wrapf(err, errors.ErrManifestFetch, "failed to read %s", s.URL)
	}
	return content, true, nil
}

// leveledLogger routes retryablehttp's messages into zerolog.
type leveledLogger struct {
	logger zerolog.Logger
}

func (l leveledLogger) Error(msg string, kv ...interface{}) { l.event(l.logger.Error(), msg, kv) }
func (l leveledLogger) Warn(msg string, kv ...interface{})  { l.event(l.logger.Warn(), msg, kv) }
func (l leveledLogger) Info(msg string, kv ...interface{})  { l.event(l.logger.Debug(), msg, kv) }
func (l leveledLogger) Debug(msg string, kv ...interface{}) { l.event(l.logger.Trace(), msg, kv) }

func (l leveledLogger) event(e *zerolog.Event, msg string, kv []interface{}) {
	for i := 0; i+1 < len(kv); i += 2 {
		e = e.Interface(fmt.Sprint(kv[i]), kv[i+1])
	}
	e.Msg(msg)
}
