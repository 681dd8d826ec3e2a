package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

var proxySecret string

func SetProxySecret(key string) {
	proxySecret = key
}

// ProxyAuthMiddleware verifies that an intake request was relayed by the
// storefront proxy. The proxy signs the query string with a shared secret:
// parameters are sorted by key, concatenated as key=value (multiple values
// joined with commas) and HMAC-SHA256'd. Requests without a valid signature
// are rejected with no response body.
func ProxyAuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		query := ctx.Request.URL.Query()
		signature := query.Get("signature")
		if signature == "" {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		query.Del("signature")

		if !hmac.Equal([]byte(SignProxyQuery(query)), []byte(signature)) {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		ctx.Next()
	}
}

// SignProxyQuery computes the hex signature of already-parsed query
// parameters, excluding any signature parameter.
func SignProxyQuery(query map[string][]string) string {
	keys := make([]string, 0, len(query))
	for key := range query {
		if key == "signature" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var payload strings.Builder
	for _, key := range keys {
		payload.WriteString(key)
		payload.WriteString("=")
		payload.WriteString(strings.Join(query[key], ","))
	}

	mac := hmac.New(sha256.New, []byte(proxySecret))
	mac.Write([]byte(payload.String()))
	return hex.EncodeToString(mac.Sum(nil))
}
