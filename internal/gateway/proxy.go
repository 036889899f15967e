// Package gateway forwards client requests from the edge to the backend services.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"calendar-server/internal/config"
	"calendar-server/internal/middleware"
	"calendar-server/internal/schemas"
	"calendar-server/internal/utils"
)

type ginContextKey struct{}

// Proxy forwards requests to a single backend service.
// Method, body, query string and headers (Authorization included) are passed on unchanged,
// and the upstream status and body are relayed verbatim.
type Proxy struct {
	Name        string
	target      *url.URL
	stripPrefix string
	reverse     *httputil.ReverseProxy
}

// NewTransport returns the upstream transport shared by all proxies.
// Dialing is bounded by cfg.ConnectTimeout and waiting for response headers by cfg.GatewayTimeout.
func NewTransport(cfg *config.Config) *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout: cfg.ConnectTimeout,
		}).DialContext,
		ResponseHeaderTimeout: cfg.GatewayTimeout,
		MaxIdleConnsPerHost:   16,
		IdleConnTimeout:       cfg.GatewayTimeout * 3,
	}
}

// NewProxy creates a proxy to rawURL. stripPrefix is removed from the incoming path
// before it is appended to the target path, so "/api/auth/login" becomes "/login".
func NewProxy(name, rawURL, stripPrefix string, transport http.RoundTripper) (*Proxy, error) {
	target, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid %s service url: %w", name, err)
	}
	if target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("invalid %s service url %q", name, rawURL)
	}

	p := &Proxy{Name: name, target: target, stripPrefix: stripPrefix}
	p.reverse = &httputil.ReverseProxy{
		Rewrite:      p.rewrite,
		Transport:    transport,
		ErrorHandler: p.handleError,
	}
	return p, nil
}

// HealthURL returns the health endpoint of the backend.
func (p *Proxy) HealthURL() string {
	return strings.TrimSuffix(p.target.String(), "/") + "/health"
}

// Forward is the gin handler relaying the current request to the backend.
func (p *Proxy) Forward(c *gin.Context) {
	utils.LogMessageWithFields(c, "debug", "Forwarding request to "+p.Name+" service")

	if traceId := utils.TraceId(c); traceId != "" {
		c.Request.Header.Set(middleware.TraceHeader, traceId)
	}
	req := c.Request.WithContext(context.WithValue(c.Request.Context(), ginContextKey{}, c))

	p.reverse.ServeHTTP(c.Writer, req)
}

func (p *Proxy) rewrite(r *httputil.ProxyRequest) {
	r.SetURL(p.target)

	path := strings.TrimPrefix(r.In.URL.Path, p.stripPrefix)
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	r.Out.URL.Path = strings.TrimSuffix(p.target.Path, "/") + path
	r.Out.URL.RawPath = ""
	r.SetXForwarded()
}

// handleError answers 502 when the backend cannot be reached or does not answer in time.
func (p *Proxy) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}

	err = fmt.Errorf("%s service unavailable: %w", p.Name, err)
	if c, ok := r.Context().Value(ginContextKey{}).(*gin.Context); ok {
		utils.WriteAndLogError(c, schemas.BadGateway, http.StatusBadGateway, err)
		return
	}

	utils.LogMessageWithFieldsAndError(r.Context(), "error", "Proxy error", err)
	w.WriteHeader(http.StatusBadGateway)
}
