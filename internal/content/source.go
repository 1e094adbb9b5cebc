package content

import (
	"context"
	"embed"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/pkg/errors"
)

//go:embed data/*.json
var embedded embed.FS

// Collection names one content feed.
type Collection string

// Content feeds.
const (
	Projects    Collection = "projects"
	Skills      Collection = "skills"
	Experiences Collection = "experiences"
)

// Collections lists every feed.
var Collections = []Collection{Projects, Skills, Experiences}

// ParseCollection validates a collection name from a URL.
func ParseCollection(s string) (c Collection, err error) {
	for _, k := range Collections {
		if string(k) == s {
			return k, nil
		}
	}
	return c, errors.Errorf("unknown collection %q", s)
}

// Source returns the raw JSON of a collection.
type Source interface {
	Fetch(ctx context.Context, c Collection) ([]byte, error)
}

// FSSource reads <Dir>/<collection>.json from a filesystem.
type FSSource struct {
	FS  fs.FS
	Dir string
}

// Embedded returns the content compiled into the binary.
func Embedded() FSSource {
	return FSSource{FS: embedded, Dir: "data"}
}

// DirSource reads content from a directory on disk.
func DirSource(dir string) FSSource {
	return FSSource{FS: os.DirFS(dir), Dir: "."}
}

// Fetch implements Source.
func (s FSSource) Fetch(ctx context.Context, c Collection) (data []byte, err error) {
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	name := path.Join(s.Dir, string(c)+".json")
	data, err = fs.ReadFile(s.FS, name)
	if err != nil {
		err = errors.Wrapf(err, "failed to read %s", name)
		return nil, err
	}
	return data, nil
}

// MaxFeedBytes caps a fetched collection body at 1 MiB. The real feeds are a
// few kilobytes.
const MaxFeedBytes = 1 << 20

// HTTPSource fetches {BaseURL}/data/{collection}.json, the same paths the
// server publishes.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPSource returns an HTTPSource with a bounded client.
func NewHTTPSource(baseURL string) HTTPSource {
	return HTTPSource{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch implements Source.
func (s HTTPSource) Fetch(ctx context.Context, c Collection) (data []byte, err error) {
	url := s.BaseURL + "/data/" + string(c) + ".json"
	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	var resp *http.Response
	resp, err = client.Do(req)
	if err != nil {
		err = errors.Wrapf(err, "GET %s", url)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("GET %s: status %d", url, resp.StatusCode)
		return nil, err
	}
	data, err = io.ReadAll(io.LimitReader(resp.Body, MaxFeedBytes+1))
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return nil, err
	}
	if len(data) > MaxFeedBytes {
		err = errors.Errorf("GET %s: body exceeds %d bytes", url, MaxFeedBytes)
		return nil, err
	}
	return data, nil
}
