package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// SignatureCodec signs and verifies the canonical field strings MoMo exchanges
// with its partners. The raw strings are a wire contract: field order and the
// key=value& joiner must be reproduced byte for byte or every check fails.
type SignatureCodec struct {
	secretKey string
}

func NewSignatureCodec(secretKey string) *SignatureCodec {
	return &SignatureCodec{secretKey: secretKey}
}

// Sign returns the lowercase hex HMAC-SHA256 digest of raw.
func (c *SignatureCodec) Sign(raw string) string {
	mac := hmac.New(sha256.New, []byte(c.secretKey))
	mac.Write([]byte(raw))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify recomputes the signature for raw and compares it against the provided
// one in constant time.
func (c *SignatureCodec) Verify(raw, provided string) bool {
	return hmac.Equal([]byte(c.Sign(raw)), []byte(provided))
}

// InitiateRawSignature builds the canonical string signed on the outbound
// payment-initiation request. Fields are ordered alphabetically by key, per
// the MoMo partner API.
func InitiateRawSignature(accessKey string, amount int64, extraData, ipnURL, orderID, orderInfo, partnerCode, redirectURL, requestID, requestType string) string {
	return fmt.Sprintf("accessKey=%s&amount=%d&extraData=%s&ipnUrl=%s&orderId=%s&orderInfo=%s&partnerCode=%s&redirectUrl=%s&requestId=%s&requestType=%s",
		accessKey, amount, extraData, ipnURL, orderID, orderInfo, partnerCode, redirectURL, requestID, requestType)
}
