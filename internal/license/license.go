package license

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Header carries the caller's license token.
const Header = "X-RINA-LICENSE"

// DeniedMessage is the body sent on a 402 or a WebSocket license error frame.
const DeniedMessage = "Payment Required / Invalid License"

// Gate validates caller-supplied license tokens. Tokens are JWT-shaped but
// only the expiry claim of the middle segment is checked; the signature is
// NOT verified.
// TODO: verify the signature against LICENSE_PUBLIC_KEY_PATH before relying
// on this as a real access control.
type Gate struct {
	enforce bool
	now     func() time.Time
}

// NewGate builds a gate. With enforce false every token is accepted.
func NewGate(enforce bool) *Gate {
	return &Gate{enforce: enforce, now: time.Now}
}

// Verify reports whether the token grants access. Fail-closed: any structural
// or decode problem counts as an invalid token, never an error.
func (g *Gate) Verify(token string) bool {
	if !g.enforce {
		return true
	}
	if token == "" {
		return false
	}
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return false
	}
	payload, err := decodeSegment(parts[1])
	if err != nil {
		return false
	}
	var claims struct {
		Exp int64 `json:"exp"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return false
	}
	return claims.Exp > g.now().Unix()
}

// Require is the middleware form of Verify; denial is 402.
func (g *Gate) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !g.Verify(c.GetHeader(Header)) {
			c.JSON(http.StatusPaymentRequired, gin.H{"error": DeniedMessage})
			c.Abort()
			return
		}
		c.Next()
	}
}

// decodeSegment pads the segment to a multiple of four and accepts both the
// standard and URL-safe base64 alphabets.
func decodeSegment(seg string) ([]byte, error) {
	if m := len(seg) % 4; m != 0 {
		seg += strings.Repeat("=", 4-m)
	}
	if b, err := base64.StdEncoding.DecodeString(seg); err == nil {
		return b, nil
	}
	return base64.URLEncoding.DecodeString(seg)
}
