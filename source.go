package htmlcompare

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/temoto/robotstxt"
)

var (
	// ErrDisallowedByRobots the robots.txt of the host does not allow the path
	ErrDisallowedByRobots = errors.New("disallowed by robots.txt")
	// ErrUnexpectedStatus the server did not answer with 200
	ErrUnexpectedStatus = errors.New("unexpected response code")
)

// Loader loads html sources from files or http(s) urls.
type Loader struct {
	Client        *http.Client
	Agent         string
	RespectRobots bool
}

// NewLoader returns a loader using http.DefaultClient.
func NewLoader() *Loader {
	return &Loader{
		Client: http.DefaultClient,
		Agent:  "htmlcompare",
	}
}

// Load reads a source. file:// urls and plain paths are read from disk,
// everything else is fetched with a GET request.
func (l *Loader) Load(ctx context.Context, location string) ([]byte, error) {
	u, errParse := url.Parse(location)
	if errParse != nil || u.Scheme == "" || u.Scheme == "file" {
		filename := strings.TrimPrefix(location, "file://")
		source, errRead := os.ReadFile(filename)
		if errRead != nil {
			return nil, fmt.Errorf("could not read %s: %w", filename, errRead)
		}
		return source, nil
	}
	if l.RespectRobots {
		allowed, errRobots := l.robotsAllowed(ctx, u)
		if errRobots != nil {
			return nil, errRobots
		}
		if !allowed {
			return nil, fmt.Errorf("%s: %w", location, ErrDisallowedByRobots)
		}
	}
	resp, errGet := l.get(ctx, location)
	if errGet != nil {
		return nil, errGet
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d, status: %s", ErrUnexpectedStatus, resp.StatusCode, resp.Status)
	}
	source, errRead := io.ReadAll(resp.Body)
	if errRead != nil {
		return nil, fmt.Errorf("could not read body of %s: %w", location, errRead)
	}
	return source, nil
}

func (l *Loader) get(ctx context.Context, location string) (*http.Response, error) {
	req, errRequest := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if errRequest != nil {
		return nil, errRequest
	}
	if l.Agent != "" {
		req.Header.Set("User-Agent", l.Agent)
	}
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, errGet := client.Do(req)
	if errGet != nil {
		return nil, fmt.Errorf("could not get %s: %w", location, errGet)
	}
	return resp, nil
}

func (l *Loader) robotsAllowed(ctx context.Context, u *url.URL) (bool, error) {
	robotsURL := url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/robots.txt"}
	resp, errGet := l.get(ctx, robotsURL.String())
	if errGet != nil {
		return false, errGet
	}
	defer resp.Body.Close()
	data, errFromResponse := robotstxt.FromResponse(resp)
	if errFromResponse != nil {
		return false, fmt.Errorf("could not read robots.txt: %w", errFromResponse)
	}
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return data.TestAgent(path, l.Agent), nil
}

// WriteSource writes source to path. The parent directory is created when
// it does not exist, its own parent has to exist.
func WriteSource(source, path string) error {
	dir := filepath.Dir(path)
	if _, errStat := os.Stat(dir); errors.Is(errStat, os.ErrNotExist) {
		if errMkdir := os.Mkdir(dir, 0o755); errMkdir != nil {
			return fmt.Errorf("could not create directory %s: %w", dir, errMkdir)
		}
	}
	if errWrite := os.WriteFile(path, []byte(source), 0o644); errWrite != nil {
		return fmt.Errorf("could not write %s: %w", path, errWrite)
	}
	return nil
}
