package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignIsDeterministic(t *testing.T) {
	codec := NewSignatureCodec("test-secret")

	raw := "accessKey=abc&amount=50000&extraData=&ipnUrl=https://example.com/notify&orderId=MOMO123&orderInfo=pay with MoMo&partnerCode=MOMO&redirectUrl=https://example.com/return&requestId=MOMO123&requestType=payWithMethod"

	first := codec.Sign(raw)
	second := codec.Sign(raw)

	require.Len(t, first, 64)
	assert.Equal(t, first, second)
}

func TestSignAvalanche(t *testing.T) {
	codec := NewSignatureCodec("test-secret")

	base := InitiateRawSignature("abc", 50000, "", "https://example.com/notify",
		"MOMO123", "pay with MoMo", "MOMO", "https://example.com/return", "MOMO123", "payWithMethod")
	changedAmount := InitiateRawSignature("abc", 50001, "", "https://example.com/notify",
		"MOMO123", "pay with MoMo", "MOMO", "https://example.com/return", "MOMO123", "payWithMethod")
	changedOrder := InitiateRawSignature("abc", 50000, "", "https://example.com/notify",
		"MOMO124", "pay with MoMo", "MOMO", "https://example.com/return", "MOMO123", "payWithMethod")

	assert.NotEqual(t, codec.Sign(base), codec.Sign(changedAmount))
	assert.NotEqual(t, codec.Sign(base), codec.Sign(changedOrder))
}

func TestVerify(t *testing.T) {
	codec := NewSignatureCodec("test-secret")
	otherCodec := NewSignatureCodec("other-secret")

	raw := "partnerCode=MOMO&orderId=MOMO123&requestId=MOMO123&amount=50000"

	assert.True(t, codec.Verify(raw, codec.Sign(raw)))
	assert.False(t, codec.Verify(raw, otherCodec.Sign(raw)), "signature from a different secret must be rejected")
	assert.False(t, codec.Verify(raw, ""), "empty signature must be rejected")
	assert.False(t, codec.Verify(raw+"&extra=1", codec.Sign(raw)), "signature over different fields must be rejected")
}

func TestInitiateRawSignatureLayout(t *testing.T) {
	raw := InitiateRawSignature("ak", 150000, "", "https://host/ipn", "ORDER1",
		"pay with MoMo", "PARTNER", "https://host/return", "REQ1", "payWithMethod")

	want := "accessKey=ak&amount=150000&extraData=&ipnUrl=https://host/ipn&orderId=ORDER1&orderInfo=pay with MoMo&partnerCode=PARTNER&redirectUrl=https://host/return&requestId=REQ1&requestType=payWithMethod"
	assert.Equal(t, want, raw)
}

func TestNotificationRawSignatureLayout(t *testing.T) {
	n := Notification{
		PartnerCode:  "PARTNER",
		OrderID:      "ORDER1",
		RequestID:    "REQ1",
		Amount:       150000,
		OrderInfo:    "pay with MoMo",
		OrderType:    "momo_wallet",
		TransID:      4088878653,
		ResultCode:   0,
		Message:      "Successful.",
		PayType:      "qr",
		ResponseTime: 1700000000000,
		ExtraData:    "",
	}

	want := "partnerCode=PARTNER&orderId=ORDER1&requestId=REQ1&amount=150000&orderInfo=pay with MoMo&orderType=momo_wallet&transId=4088878653&resultCode=0&message=Successful.&payType=qr&responseTime=1700000000000&extraData="
	assert.Equal(t, want, n.RawSignature())
}

func TestNotificationSignatureRoundTrip(t *testing.T) {
	codec := NewSignatureCodec("at67qH6mk8w5Y1nAyMoYKMWACiEi2bsa")

	n := Notification{
		PartnerCode:  "MOMO",
		OrderID:      "MOMO1700000000000",
		RequestID:    "MOMO1700000000000",
		Amount:       50000,
		OrderInfo:    "pay with MoMo",
		OrderType:    "momo_wallet",
		TransID:      4088878653,
		ResultCode:   0,
		Message:      "Successful.",
		PayType:      "qr",
		ResponseTime: 1700000001234,
	}
	n.Signature = codec.Sign(n.RawSignature())

	assert.True(t, codec.Verify(n.RawSignature(), n.Signature))

	// A success result code does not make a bad signature acceptable.
	tampered := n
	tampered.Amount = 1
	assert.False(t, codec.Verify(tampered.RawSignature(), tampered.Signature))
}
