// ABOUTME: REST client for the Gerrit changes API with basic auth under the /a/ prefix.
// ABOUTME: Strips the XSSI guard line before decoding; every call takes a context.

package gerrit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	ihttp "github.com/mauromedda/ger-go/internal/http"
	"github.com/mauromedda/ger-go/internal/log"
)

// xssiGuard prefixes every Gerrit JSON response to defeat script
// inclusion; it must be removed before decoding.
const xssiGuard = ")]}'"

const defaultTimeout = 30 * time.Second

// Client is the remote surface the shell commands call.
type Client interface {
	// QueryChanges runs a change search. Filters are joined into a
	// single query expression; an empty list queries without one.
	QueryChanges(ctx context.Context, filters []string) ([]Change, error)
	// GetChange fetches one change with its current revision and
	// commit message populated.
	GetChange(ctx context.Context, id string) (*Change, error)
}

// RESTClient talks to a Gerrit server over its authenticated REST API.
type RESTClient struct {
	base     string
	username string
	password string
	http     *http.Client
}

var _ Client = (*RESTClient)(nil)

// NewRESTClient returns a client for the server at base. The trailing
// slash is normalized away so path joins stay predictable.
func NewRESTClient(base, username, password string) *RESTClient {
	return &RESTClient{
		base:     strings.TrimRight(base, "/"),
		username: username,
		password: password,
		http:     ihttp.SecureHTTPClient(defaultTimeout),
	}
}

// QueryChanges implements Client.
func (c *RESTClient) QueryChanges(ctx context.Context, filters []string) ([]Change, error) {
	q := url.Values{}
	if len(filters) > 0 {
		q.Set("q", strings.Join(filters, " "))
	}
	q.Add("o", "CURRENT_REVISION")
	q.Add("o", "DETAILED_ACCOUNTS")

	var changes []Change
	if err := c.get(ctx, "/a/changes/?"+q.Encode(), &changes); err != nil {
		return nil, fmt.Errorf("querying changes: %w", err)
	}
	log.Debug("query returned %d changes", len(changes))
	return changes, nil
}

// GetChange implements Client.
func (c *RESTClient) GetChange(ctx context.Context, id string) (*Change, error) {
	q := url.Values{}
	q.Add("o", "CURRENT_REVISION")
	q.Add("o", "CURRENT_COMMIT")
	q.Add("o", "DETAILED_ACCOUNTS")
	q.Add("o", "DETAILED_LABELS")

	var change Change
	path := "/a/changes/" + url.PathEscape(id) + "?" + q.Encode()
	if err := c.get(ctx, path, &change); err != nil {
		return nil, fmt.Errorf("fetching change %s: %w", id, err)
	}
	return &change, nil
}

// get performs an authenticated GET and decodes the guarded JSON body
// into out.
func (c *RESTClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	return json.Unmarshal(stripGuard(body), out)
}

// stripGuard removes the XSSI guard line from a response body.
func stripGuard(body []byte) []byte {
	s := strings.TrimPrefix(string(body), xssiGuard)
	return []byte(strings.TrimLeft(s, "\n"))
}
