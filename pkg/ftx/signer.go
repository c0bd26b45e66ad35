package ftx

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strconv"
	"strings"
)

const (
	KeyHeader        = "FTX-KEY"
	SignHeader       = "FTX-SIGN"
	TimestampHeader  = "FTX-TS"
	SubaccountHeader = "FTX-SUBACCOUNT"
)

// Signature is the authentication header set for a single request.
type Signature struct {
	Timestamp  int64  // milliseconds since epoch
	Value      string // hex encoded HMAC-SHA256
	Key        string
	Subaccount string // empty for the main account
}

// Sign computes the signature over timestamp + METHOD + pathAndQuery + body.
// pathAndQuery is the request URI without the host, e.g.
// "/api/orders?market=BTC-PERP". body must be the exact bytes that are sent.
func Sign(creds *Credentials, method, pathAndQuery string, body []byte, timestampMs int64) Signature {
	ts := strconv.FormatInt(timestampMs, 10)

	mac := hmac.New(sha256.New, []byte(creds.secret))
	mac.Write([]byte(ts))
	mac.Write([]byte(strings.ToUpper(method)))
	mac.Write([]byte(pathAndQuery))
	mac.Write(body)

	return Signature{
		Timestamp:  timestampMs,
		Value:      hex.EncodeToString(mac.Sum(nil)),
		Key:        creds.key,
		Subaccount: creds.subaccount,
	}
}

// Apply sets the authentication headers on h.
func (s Signature) Apply(h http.Header) {
	h.Set(KeyHeader, s.Key)
	h.Set(SignHeader, s.Value)
	h.Set(TimestampHeader, strconv.FormatInt(s.Timestamp, 10))
	if s.Subaccount != "" {
		h.Set(SubaccountHeader, s.Subaccount)
	}
}

// Header returns the authentication headers as a new header map.
func (s Signature) Header() http.Header {
	h := make(http.Header, 4)
	s.Apply(h)
	return h
}
