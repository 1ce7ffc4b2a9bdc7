package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	serperEndpoint = "https://google.serper.dev/search"
	cseEndpoint    = "https://www.googleapis.com/customsearch/v1"

	searchTimeout     = 12 * time.Second
	maxSearchResults  = 5
	maxSearchBodySize = 1 << 20
)

// Backend identifies which search provider is active for this process.
type Backend int

const (
	BackendNone Backend = iota
	BackendSerper
	BackendGoogleCSE
)

func (b Backend) String() string {
	switch b {
	case BackendSerper:
		return "serper"
	case BackendGoogleCSE:
		return "google-cse"
	default:
		return "none"
	}
}

// Searcher is the provider-neutral search contract consumed by the detector.
// Search never fails from the caller's point of view: transport and parse
// errors come back as a SearchResult carrying a diagnostic snippet.
type Searcher interface {
	// Available reports whether a backend is configured, without network I/O.
	Available() bool
	// Backend names the provider selected at construction time.
	Backend() Backend
	// Search issues one bounded-timeout request and normalizes the response.
	Search(ctx context.Context, query string) SearchResult
}

type searchSettings struct {
	httpClient *http.Client
	serperURL  string
	cseURL     string
	country    string
	language   string
}

// SearchOption customizes the searcher, mainly for tests.
type SearchOption func(*searchSettings)

func WithSearchHTTPClient(c *http.Client) SearchOption {
	return func(s *searchSettings) { s.httpClient = c }
}

func WithSerperURL(u string) SearchOption {
	return func(s *searchSettings) { s.serperURL = u }
}

func WithCSEURL(u string) SearchOption {
	return func(s *searchSettings) { s.cseURL = u }
}

// NewSearcher resolves the active backend once from credential availability,
// in fixed priority order: Serper first, Google Custom Search second,
// otherwise a searcher that always returns an empty result.
func NewSearcher(cfg Config, opts ...SearchOption) Searcher {
	settings := searchSettings{
		httpClient: &http.Client{Timeout: searchTimeout},
		serperURL:  serperEndpoint,
		cseURL:     cseEndpoint,
		country:    cfg.SearchCountry,
		language:   cfg.SearchLanguage,
	}
	for _, opt := range opts {
		opt(&settings)
	}

	switch {
	case cfg.SerperAPIKey != "":
		return &serperSearcher{apiKey: cfg.SerperAPIKey, settings: settings}
	case cfg.GoogleCSEAPIKey != "" && cfg.GoogleCSEID != "":
		return &cseSearcher{apiKey: cfg.GoogleCSEAPIKey, cx: cfg.GoogleCSEID, settings: settings}
	default:
		return noSearcher{}
	}
}

// failureResult packages a backend failure as data: no answer, one
// diagnostic snippet, no links.
func failureResult(provider string, err error) SearchResult {
	return SearchResult{Snippets: []string{fmt.Sprintf("%s error: %v", provider, err)}}
}

// serperSearcher queries the Serper.dev wrapper around Google Search.
type serperSearcher struct {
	apiKey   string
	settings searchSettings
}

func (s *serperSearcher) Available() bool  { return true }
func (s *serperSearcher) Backend() Backend { return BackendSerper }

type serperResponse struct {
	AnswerBox struct {
		Answer string `json:"answer"`
	} `json:"answerBox"`
	KnowledgeGraph struct {
		Title string `json:"title"`
	} `json:"knowledgeGraph"`
	Organic []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"organic"`
}

func (s *serperSearcher) Search(ctx context.Context, query string) SearchResult {
	body, err := json.Marshal(map[string]string{
		"q":  query,
		"gl": s.settings.country,
		"hl": s.settings.language,
	})
	if err != nil {
		return failureResult("Serper", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.settings.serperURL, bytes.NewReader(body))
	if err != nil {
		return failureResult("Serper", err)
	}
	req.Header.Set("X-API-KEY", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	raw, err := doSearchRequest(s.settings.httpClient, req)
	if err != nil {
		return failureResult("Serper", err)
	}

	var payload serperResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return failureResult("Serper", err)
	}

	answer := payload.AnswerBox.Answer
	if answer == "" {
		answer = payload.KnowledgeGraph.Title
	}

	result := SearchResult{Answer: answer}
	for i, item := range payload.Organic {
		if i >= maxSearchResults {
			break
		}
		title := item.Title
		if title == "" {
			title = "(no title)"
		}
		result.Snippets = append(result.Snippets, item.Snippet)
		result.Links = append(result.Links, Link{Title: title, URL: item.Link})
	}
	return result
}

// cseSearcher queries the official Google Custom Search JSON API.
type cseSearcher struct {
	apiKey   string
	cx       string
	settings searchSettings
}

func (s *cseSearcher) Available() bool  { return true }
func (s *cseSearcher) Backend() Backend { return BackendGoogleCSE }

type cseResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"items"`
}

func (s *cseSearcher) Search(ctx context.Context, query string) SearchResult {
	params := url.Values{}
	params.Set("key", s.apiKey)
	params.Set("cx", s.cx)
	params.Set("q", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.settings.cseURL+"?"+params.Encode(), nil)
	if err != nil {
		return failureResult("Google CSE", err)
	}

	raw, err := doSearchRequest(s.settings.httpClient, req)
	if err != nil {
		return failureResult("Google CSE", err)
	}

	var payload cseResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return failureResult("Google CSE", err)
	}

	var result SearchResult
	for i, item := range payload.Items {
		if i >= maxSearchResults {
			break
		}
		title := item.Title
		if title == "" {
			title = "(no title)"
		}
		result.Snippets = append(result.Snippets, item.Snippet)
		result.Links = append(result.Links, Link{Title: title, URL: item.Link})
	}
	// CSE rarely carries a direct answer; the first snippet stands in.
	if len(result.Snippets) > 0 {
		result.Answer = result.Snippets[0]
	}
	return result
}

// noSearcher is the backend used when no credentials are configured.
type noSearcher struct{}

func (noSearcher) Available() bool  { return false }
func (noSearcher) Backend() Backend { return BackendNone }
func (noSearcher) Search(ctx context.Context, query string) SearchResult {
	return SearchResult{}
}

func doSearchRequest(client *http.Client, req *http.Request) ([]byte, error) {
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		buf, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return nil, &HTTPStatusError{
			StatusCode: res.StatusCode,
			URL:        req.URL.String(),
			Body:       string(buf),
		}
	}

	return io.ReadAll(io.LimitReader(res.Body, maxSearchBodySize))
}
