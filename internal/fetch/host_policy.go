package fetch

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
	"golang.org/x/time/rate"
)

// HostPolicy enforces politeness per host: a minimum spacing between
// requests and a cached robots.txt verdict.
type HostPolicy struct {
	mu          sync.Mutex
	userAgent   string
	interval    time.Duration
	respect     bool
	limiters    map[string]*rate.Limiter
	robotsCache map[string]*robotstxt.Group
}

func NewHostPolicy(userAgent string, interval time.Duration, respectRobots bool) *HostPolicy {
	return &HostPolicy{
		userAgent:   userAgent,
		interval:    interval,
		respect:     respectRobots,
		limiters:    make(map[string]*rate.Limiter),
		robotsCache: make(map[string]*robotstxt.Group),
	}
}

// Wait blocks until the host's limiter allows the next request.
func (p *HostPolicy) Wait(ctx context.Context, targetURL string) error {
	u, err := url.Parse(targetURL)
	if err != nil {
		return err
	}
	host := u.Host

	p.mu.Lock()
	limiter, exists := p.limiters[host]
	if !exists {
		// Burst of 1: the first request goes through immediately,
		// anything after waits out the interval.
		limiter = rate.NewLimiter(rate.Every(p.interval), 1)
		p.limiters[host] = limiter
	}
	p.mu.Unlock()

	return limiter.Wait(ctx)
}

// IsAllowed reports whether robots.txt permits fetching the link.
// A missing or unparsable robots.txt counts as allowed.
func (p *HostPolicy) IsAllowed(link string) bool {
	if !p.respect {
		return true
	}

	u, err := url.Parse(link)
	if err != nil {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	group, exists := p.robotsCache[u.Host]
	if !exists {
		// Fetching inside the lock is fine here: one host per run.
		resp, err := http.Get(u.Scheme + "://" + u.Host + "/robots.txt")
		if err != nil || resp.StatusCode != 200 {
			if resp != nil {
				resp.Body.Close()
			}
			p.robotsCache[u.Host] = nil
			return true
		}
		defer resp.Body.Close()

		data, err := robotstxt.FromResponse(resp)
		if err != nil {
			p.robotsCache[u.Host] = nil
			return true
		}
		group = data.FindGroup(p.userAgent)
		p.robotsCache[u.Host] = group
	}

	if group == nil {
		return true
	}
	return group.Test(u.Path)
}
