// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package eutils is a client for the NCBI Entrez E-utilities API. It covers
// the three operations the assessment pipeline needs: esearch with the
// history server enabled, esummary for compact paper records, and efetch
// for full bibliographic XML.
//
// Search stores its result set on the NCBI history server and returns a
// cursor (WebEnv + query key). FetchSummaries and FetchFullRecords pass the
// cursor back, so they always see the exact membership of the search that
// produced it.
package eutils

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/pdiddy/pubmetric/internal/httputil"
	"github.com/pdiddy/pubmetric/pkg/types"
)

// E-utilities endpoints. Declared as vars so tests can substitute an
// httptest server.
var (
	esearchBase  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	esummaryBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esummary.fcgi"
	efetchBase   = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"
)

// esearchContractVersion is the esearch response-header version this client
// was written against. A different version surfaces as a warning, not an
// error: field names may have drifted but most responses still parse.
const esearchContractVersion = "0.3"

// Client issues E-utilities requests against the pubmed database. A
// client-side limiter keeps within the NCBI request budget: 3 requests per
// second anonymously, 10 with an API key.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	email      string
	apiKey     string
	userAgent  string

	// warn receives contract-drift and parse warnings; defaults to stderr.
	warn io.Writer
}

// NewClient builds a Client from the NCBI credentials and HTTP settings.
func NewClient(ncbi types.NCBIConfig, httpCfg types.HTTPConfig) *Client {
	rps := 3
	if ncbi.APIKey != "" {
		rps = 10
	}
	return &Client{
		httpClient: &http.Client{Timeout: httpCfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		email:      ncbi.Email,
		apiKey:     ncbi.APIKey,
		userAgent:  httpCfg.UserAgent,
		warn:       os.Stderr,
	}
}

// baseParams returns the parameters common to every E-utilities call.
func (c *Client) baseParams() url.Values {
	params := url.Values{
		"db":      {"pubmed"},
		"retmode": {"json"},
	}
	if c.email != "" {
		params.Set("email", c.email)
	}
	if c.apiKey != "" {
		params.Set("api_key", c.apiKey)
	}
	return params
}

// cursorParams returns baseParams plus the history-server cursor.
func (c *Client) cursorParams(cur types.ResultCursor) url.Values {
	params := c.baseParams()
	params.Set("WebEnv", cur.WebEnv)
	params.Set("query_key", cur.QueryKey)
	return params
}

// get performs a rate-limited GET with 429 retry and checks the status code.
// The caller owns the returned body.
func (c *Client) get(ctx context.Context, base string, params url.Values) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, 0)
	if err != nil {
		return nil, fmt.Errorf("E-utilities request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("E-utilities returned HTTP %d", resp.StatusCode)
	}
	return resp, nil
}

// esearch JSON structures.
type esearchResponse struct {
	Header struct {
		Type    string `json:"type"`
		Version string `json:"version"`
	} `json:"header"`
	Result struct {
		Count    string   `json:"count"`
		IDList   []string `json:"idlist"`
		WebEnv   string   `json:"webenv"`
		QueryKey string   `json:"querykey"`
	} `json:"esearchresult"`
}

// Search issues an esearch query with usehistory=y, caching the result set
// on the NCBI history server for the follow-up fetches.
func (c *Client) Search(ctx context.Context, term string) (types.SearchOutcome, error) {
	params := c.baseParams()
	params.Set("term", term)
	params.Set("usehistory", "y")

	resp, err := c.get(ctx, esearchBase, params)
	if err != nil {
		return types.SearchOutcome{}, err
	}
	defer resp.Body.Close()

	var er esearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return types.SearchOutcome{}, fmt.Errorf("parsing esearch response: %w", err)
	}

	if er.Header.Version != esearchContractVersion {
		fmt.Fprintf(c.warn, "warning: esearch response version is %q, expected %q; results may be incorrect\n",
			er.Header.Version, esearchContractVersion)
	}

	count, err := strconv.Atoi(er.Result.Count)
	if err != nil {
		return types.SearchOutcome{}, fmt.Errorf("parsing esearch count %q: %w", er.Result.Count, err)
	}

	return types.SearchOutcome{
		Count: count,
		PMIDs: er.Result.IDList,
		Cursor: types.ResultCursor{
			WebEnv:   er.Result.WebEnv,
			QueryKey: er.Result.QueryKey,
		},
	}, nil
}
