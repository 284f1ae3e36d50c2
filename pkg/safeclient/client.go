// Package safeclient provides an HTTP client that refuses to connect to
// private, loopback and metadata addresses.
package safeclient

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"syscall"
	"time"
)

// ErrForbiddenIP is returned when a dial resolves to a blocked address.
var ErrForbiddenIP = errors.New("connection to private/internal IP addresses is forbidden")

var forbiddenPrefixes = mustPrefixes(
	"0.0.0.0/8",          // "this" network
	"10.0.0.0/8",         // RFC 1918
	"100.64.0.0/10",      // carrier-grade NAT
	"127.0.0.0/8",        // loopback
	"169.254.0.0/16",     // link-local, cloud metadata
	"172.16.0.0/12",      // RFC 1918
	"192.0.2.0/24",       // TEST-NET-1
	"192.168.0.0/16",     // RFC 1918
	"198.51.100.0/24",    // TEST-NET-2
	"203.0.113.0/24",     // TEST-NET-3
	"224.0.0.0/4",        // multicast
	"255.255.255.255/32", // broadcast
	"::/128",
	"::1/128",
	"fc00::/7",
	"fe80::/10",
	"fec0::/10",
	"ff00::/8",
	"2001:db8::/32",
)

func mustPrefixes(cidrs ...string) []netip.Prefix {
	out := make([]netip.Prefix, 0, len(cidrs))
	for _, c := range cidrs {
		out = append(out, netip.MustParsePrefix(c))
	}
	return out
}

// IsForbidden reports whether connecting to addr must be refused.
// IPv4-mapped IPv6 addresses are checked as IPv4.
func IsForbidden(addr netip.Addr) bool {
	if !addr.IsValid() {
		return true
	}
	addr = addr.Unmap()
	for _, p := range forbiddenPrefixes {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// control runs after DNS resolution, so rebinding to an internal address
// is caught at connect time.
func control(_, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("failed to parse address: %w", err)
	}

	addr, err := netip.ParseAddr(host)
	if err != nil {
		return fmt.Errorf("invalid IP address: %s", host)
	}

	if IsForbidden(addr) {
		return ErrForbiddenIP
	}
	return nil
}

type options struct {
	timeout      time.Duration
	maxRedirects int
	allowPrivate bool
}

// Option customises a client built by New.
type Option func(*options)

// WithTimeout sets the overall request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithMaxRedirects caps how many redirects are followed.
func WithMaxRedirects(n int) Option {
	return func(o *options) { o.maxRedirects = n }
}

// WithAllowPrivate turns the address filter off. Only for local development.
func WithAllowPrivate(allow bool) Option {
	return func(o *options) { o.allowPrivate = allow }
}

// New creates an HTTP client. Defaults: 30s timeout, 10 redirects.
func New(opts ...Option) *http.Client {
	o := options{
		timeout:      30 * time.Second,
		maxRedirects: 10,
	}
	for _, opt := range opts {
		opt(&o)
	}

	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	if !o.allowPrivate {
		dialer.Control = control
	}

	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ForceAttemptHTTP2:     true,
	}
	if !o.allowPrivate {
		// An env proxy would make the dial target the proxy, not the origin.
		transport.Proxy = nil
	}

	maxRedirects := o.maxRedirects
	return &http.Client{
		Transport: transport,
		Timeout:   o.timeout,
		CheckRedirect: func(_ *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}
}
