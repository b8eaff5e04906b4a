package middleware

import (
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"time"

	"arena/shared"
	"arena/shared/constant"
	"arena/transport/http/response"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog/log"
)

const cacheKeyRateLimit = "limiter"

// RateLimit counts requests per client in a fixed window kept in Redis. A
// cache outage lets traffic through.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	limiter := a.config.App.RateLimiter
	window := time.Duration(limiter.WindowSeconds) * time.Second

	return func(next http.Handler) http.Handler {
		if !limiter.Enable || limiter.MaxRequests <= 0 || window <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := shared.BuildCacheKey(cacheKeyRateLimit, a.clientKey(r))

			count, err := a.cache.Incr(r.Context(), key, window)
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("rate limiter unavailable, letting request through")
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limiter.MaxRequests))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(max(0, int64(limiter.MaxRequests)-count), 10))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limiter.WindowSeconds))

			if count > int64(limiter.MaxRequests) {
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientKey identifies the caller by address and user agent. The pair is
// hashed so arbitrary header text never ends up in a Redis key.
func (a *appMiddleware) clientKey(r *http.Request) string {
	agent := r.Header.Get(constant.RequestHeaderUserAgent)
	if agent == constant.Empty {
		agent = "unknown"
	}

	return a.clientIP(r) + ":" + strconv.FormatUint(xxhash.Sum64String(agent), 16)
}

// clientIP is the peer address unless the peer is a trusted proxy. Behind
// one, X-Forwarded-For is walked from the right and the first hop that is
// not itself a trusted proxy wins.
func (a *appMiddleware) clientIP(r *http.Request) string {
	peer := r.RemoteAddr
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		peer = host
	}

	if !a.trusted(peer) {
		return peer
	}

	if forwarded := r.Header.Get(constant.RequestHeaderForwardedFor); forwarded != constant.Empty {
		hops := strings.Split(forwarded, ",")

		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if hop == constant.Empty {
				continue
			}

			if i == 0 || !a.trusted(hop) {
				return hop
			}
		}
	}

	if realIP := strings.TrimSpace(r.Header.Get(constant.RequestHeaderRealIP)); realIP != constant.Empty {
		return realIP
	}

	return peer
}

func (a *appMiddleware) trusted(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}

	addr = addr.Unmap()

	for _, prefix := range a.proxies {
		if prefix.Contains(addr) {
			return true
		}
	}

	return false
}
