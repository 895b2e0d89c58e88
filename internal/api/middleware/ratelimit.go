package middleware

import (
    "net/http"
    "sync"
    "time"

    "github.com/gin-gonic/gin"
    "golang.org/x/time/rate"

    "github.com/d60-Lab/mini-mall/pkg/response"
)

const (
    limiterMaxIdle       = 3 * time.Minute
    limiterSweepInterval = time.Minute
)

type ipLimiter struct {
    lim      *rate.Limiter
    lastSeen time.Time
}

// ipLimiters 按 IP 维护限流器，空闲条目定期回收，避免映射无界增长
type ipLimiters struct {
    mu      sync.Mutex
    rps     float64
    burst   int
    entries map[string]*ipLimiter
}

func newIPLimiters(rps float64, burst int) *ipLimiters {
    return &ipLimiters{rps: rps, burst: burst, entries: make(map[string]*ipLimiter)}
}

func (l *ipLimiters) get(ip string) *rate.Limiter {
    l.mu.Lock()
    defer l.mu.Unlock()
    e, ok := l.entries[ip]
    if !ok {
        e = &ipLimiter{lim: rate.NewLimiter(rate.Limit(l.rps), l.burst)}
        l.entries[ip] = e
    }
    e.lastSeen = time.Now()
    return e.lim
}

func (l *ipLimiters) sweep(maxIdle time.Duration) {
    l.mu.Lock()
    defer l.mu.Unlock()
    cutoff := time.Now().Add(-maxIdle)
    for ip, e := range l.entries {
        if e.lastSeen.Before(cutoff) {
            delete(l.entries, ip)
        }
    }
}

func (l *ipLimiters) janitor() {
    ticker := time.NewTicker(limiterSweepInterval)
    defer ticker.Stop()
    for range ticker.C {
        l.sweep(limiterMaxIdle)
    }
}

// RateLimit 按客户端 IP 限流，挂在注册/登录路由上防爆破
func RateLimit(rps float64, burst int) gin.HandlerFunc {
    limiters := newIPLimiters(rps, burst)
    go limiters.janitor()
    return func(c *gin.Context) {
        if !limiters.get(c.ClientIP()).Allow() {
            c.JSON(http.StatusTooManyRequests, response.Response{
                Code:    http.StatusTooManyRequests,
                Message: "too many requests",
            })
            c.Abort()
            return
        }
        c.Next()
    }
}
