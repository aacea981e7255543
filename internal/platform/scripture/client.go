// Package scripture implements the client for the public Bible-text API,
// with an optional Redis cache in front since chapter text never changes.
package scripture

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/imani-cms/imani_backend/internal/apperrors"
	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/dto"
	"github.com/imani-cms/imani_backend/internal/platform/cache"
)

const (
	requestTimeout = 10 * time.Second
	cacheTTL       = 24 * time.Hour
)

// Client fetches chapters from a bible-api.com style endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      cache.Cache
}

var _ portssvc.ScriptureSvc = (*Client)(nil)

// NewClient creates a scripture client. chapterCache may be nil.
func NewClient(baseURL string, chapterCache cache.Cache) *Client {
	if chapterCache == nil {
		chapterCache = (*cache.RedisCache)(nil)
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
		cache:      chapterCache,
	}
}

type apiResponse struct {
	Reference string `json:"reference"`
	Verses    []struct {
		Verse int    `json:"verse"`
		Text  string `json:"text"`
	} `json:"verses"`
}

// GetChapter fetches the verses of one chapter.
func (c *Client) GetChapter(ctx context.Context, book string, chapter int) (*dto.ScriptureResponse, error) {
	if book == "" || chapter < 1 {
		return nil, apperrors.ErrValidation
	}

	cacheKey := fmt.Sprintf("scripture:%s:%d", strings.ToLower(book), chapter)
	if cached, ok := c.cache.Get(ctx, cacheKey); ok {
		var resp dto.ScriptureResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return &resp, nil
		}
	}

	reference := fmt.Sprintf("%s %d", book, chapter)
	reqURL := c.baseURL + "/" + url.PathEscape(reference)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build scripture request: %w", err)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrServiceUnavailable, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode == http.StatusNotFound {
		return nil, apperrors.ErrNotFound
	}
	if httpResp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(httpResp.Body, 2048))
		return nil, fmt.Errorf("%w: scripture endpoint returned %d: %s", apperrors.ErrServiceUnavailable, httpResp.StatusCode, string(payload))
	}

	var ar apiResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&ar); err != nil {
		return nil, fmt.Errorf("%w: failed to decode scripture response: %v", apperrors.ErrServiceUnavailable, err)
	}
	if len(ar.Verses) == 0 {
		return nil, apperrors.ErrNotFound
	}

	resp := &dto.ScriptureResponse{Reference: ar.Reference}
	for _, v := range ar.Verses {
		resp.Verses = append(resp.Verses, dto.Verse{
			Number: v.Verse,
			Text:   strings.TrimSpace(v.Text),
		})
	}

	if encoded, err := json.Marshal(resp); err == nil {
		c.cache.Set(ctx, cacheKey, string(encoded), cacheTTL)
	}
	return resp, nil
}
