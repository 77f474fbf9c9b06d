package application

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/proclubshub/backend/pkg/helpers"
)

// UpstreamError carries the detail of a failed call to the EA provider.
type UpstreamError struct {
	Detail string
}

func (e *UpstreamError) Error() string { return e.Detail }

// EAService proxies club details from the external EA provider. The upstream
// body is passed through verbatim; a short-TTL Redis cache sits in front of it
// because EA throttles repeat lookups hard. Cache failures fail open.
type EAService struct {
	BaseURL  string
	Client   *http.Client
	Redis    *redis.Client
	CacheTTL time.Duration
	Logger   *logrus.Logger
}

func NewEAService(baseURL string, rdb *redis.Client, cacheTTL time.Duration, logger *logrus.Logger) *EAService {
	return &EAService{
		BaseURL:  baseURL,
		Client:   &http.Client{Timeout: 10 * time.Second},
		Redis:    rdb,
		CacheTTL: cacheTTL,
		Logger:   logger,
	}
}

func cacheKey(platform, clubID string) string {
	return "ea:clubdetails:" + platform + ":" + clubID
}

// ClubDetails fetches the upstream club-info payload for the platform/club pair.
func (s *EAService) ClubDetails(ctx context.Context, platform, clubID string) ([]byte, error) {
	key := cacheKey(platform, clubID)
	if s.Redis != nil && s.CacheTTL > 0 {
		if b, ok, err := helpers.CacheGet(ctx, s.Redis, key); err == nil && ok {
			return b, nil
		}
	}

	q := url.Values{}
	q.Set("platform", platform)
	q.Set("clubIds", clubID)
	reqURL := s.BaseURL + "/clubs/info?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &UpstreamError{Detail: err.Error()}
	}
	// EA's API rejects requests without a browser-ish user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, &UpstreamError{Detail: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Detail: err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{Detail: fmt.Sprintf("upstream status %d", resp.StatusCode)}
	}

	if s.Redis != nil && s.CacheTTL > 0 {
		if err := helpers.CacheSet(ctx, s.Redis, key, body, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("key", key).Warn("ea cache set failed")
		}
	}
	return body, nil
}
