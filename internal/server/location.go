package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	commonhttp "takeout-recommender/internal/common/http"
	"takeout-recommender/internal/common/logger"
)

const (
	unknownIP        = "unknown"
	unknownCity      = "未知"
	unknownLocation  = "您所在的城市"
	geoLookupTimeout = 5 * time.Second
)

// ClientIP prefers the first X-Forwarded-For entry, then X-Real-IP, then the
// connection's remote address.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first := strings.TrimSpace(strings.Split(fwd, ",")[0]); first != "" {
			return first
		}
	}
	if real := strings.TrimSpace(r.Header.Get("X-Real-IP")); real != "" {
		return real
	}
	if r.RemoteAddr == "" {
		return unknownIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Locator turns a client IP into the location phrase used in the chat prompt.
type Locator struct {
	baseURL     string
	defaultCity string
	client      *commonhttp.Client
	logger      logger.Logger
}

func NewLocator(baseURL, defaultCity string, log logger.Logger) *Locator {
	return &Locator{
		baseURL:     strings.TrimRight(baseURL, "/"),
		defaultCity: defaultCity,
		client:      commonhttp.NewClient(geoLookupTimeout),
		logger:      log.WithFields(map[string]interface{}{"component": "locator"}),
	}
}

type geoResponse struct {
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country_name"`
	Error   bool   `json:"error"`
	Reason  string `json:"reason"`
}

// Locate never fails: local addresses and lookup errors resolve to the
// default city.
func (l *Locator) Locate(ctx context.Context, ip string) string {
	return locationPhrase(l.city(ctx, ip))
}

func (l *Locator) city(ctx context.Context, ip string) string {
	if isLocal(ip) || l.baseURL == "" {
		return l.defaultCity
	}

	ctx, cancel := context.WithTimeout(ctx, geoLookupTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/%s/json/", l.baseURL, url.PathEscape(ip)), nil)
	if err != nil {
		return l.defaultCity
	}

	var geo geoResponse
	if err := l.client.DoJSON(ctx, req, &geo); err != nil {
		l.logger.Warn("ip geolocation failed", map[string]interface{}{"ip": ip, "error": err.Error()})
		return l.defaultCity
	}
	if geo.Error {
		l.logger.Warn("ip geolocation rejected", map[string]interface{}{"ip": ip, "reason": geo.Reason})
		return l.defaultCity
	}
	if geo.City == "" {
		return unknownCity
	}
	return geo.City
}

func locationPhrase(city string) string {
	if city == "" || city == unknownCity {
		return unknownLocation
	}
	return city + "市"
}

func isLocal(ip string) bool {
	if ip == "" || ip == unknownIP || ip == "localhost" {
		return true
	}
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return true
	}
	return parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsUnspecified() ||
		parsed.IsLinkLocalUnicast()
}
