package payments

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	config "github.com/anqnd2510/tray-homework/configs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMomoConfig(endpoint string) config.MomoConfig {
	return config.MomoConfig{
		PartnerCode: "MOMO",
		AccessKey:   "F8BBA842ECF85",
		SecretKey:   "K951B6PE1waDMi640xX08PD3vg6EkVlz",
		Endpoint:    endpoint,
		RedirectURL: "https://example.com/return",
		IPNURL:      "https://example.com/notify",
	}
}

func TestInitiateSuccess(t *testing.T) {
	var received PaymentRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		json.NewEncoder(w).Encode(PaymentResponse{
			PartnerCode: "MOMO",
			OrderID:     received.OrderID,
			RequestID:   received.RequestID,
			Amount:      received.Amount,
			ResultCode:  0,
			Message:     "Successful.",
			PayURL:      "https://test-payment.momo.vn/pay",
		})
	}))
	defer server.Close()

	cfg := testMomoConfig(server.URL)
	codec := NewSignatureCodec(cfg.SecretKey)
	client := NewMomoClient(cfg, codec)

	resp, err := client.Initiate("MOMO1700000000000", "MOMO1700000000000", 50000)
	require.NoError(t, err)
	assert.Equal(t, "https://test-payment.momo.vn/pay", resp.PayURL)

	// The request body must carry the fixed partner fields and a signature the
	// gateway can reproduce from the canonical field string.
	assert.Equal(t, "MOMO", received.PartnerCode)
	assert.Equal(t, "Test", received.PartnerName)
	assert.Equal(t, "MomoTestStore", received.StoreID)
	assert.Equal(t, "pay with MoMo", received.OrderInfo)
	assert.Equal(t, "payWithMethod", received.RequestType)
	assert.Equal(t, "vi", received.Lang)
	assert.True(t, received.AutoCapture)

	raw := InitiateRawSignature(cfg.AccessKey, 50000, "", cfg.IPNURL,
		"MOMO1700000000000", "pay with MoMo", cfg.PartnerCode, cfg.RedirectURL,
		"MOMO1700000000000", "payWithMethod")
	assert.Equal(t, codec.Sign(raw), received.Signature)
}

func TestInitiateNon200IsRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := testMomoConfig(server.URL)
	client := NewMomoClient(cfg, NewSignatureCodec(cfg.SecretKey))

	_, err := client.Initiate("ORDER", "ORDER", 50000)
	assert.ErrorIs(t, err, ErrGatewayRejected)
}

func TestInitiateGatewayRefusal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(PaymentResponse{ResultCode: 41, Message: "Duplicated orderId"})
	}))
	defer server.Close()

	cfg := testMomoConfig(server.URL)
	client := NewMomoClient(cfg, NewSignatureCodec(cfg.SecretKey))

	_, err := client.Initiate("ORDER", "ORDER", 50000)
	assert.ErrorIs(t, err, ErrGatewayRejected)
	assert.Contains(t, err.Error(), "Duplicated orderId")
}

func TestInitiateUnreachableGateway(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	cfg := testMomoConfig(endpoint)
	client := NewMomoClient(cfg, NewSignatureCodec(cfg.SecretKey))

	_, err := client.Initiate("ORDER", "ORDER", 50000)
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}

func TestInitiateMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	cfg := testMomoConfig(server.URL)
	client := NewMomoClient(cfg, NewSignatureCodec(cfg.SecretKey))

	_, err := client.Initiate("ORDER", "ORDER", 50000)
	assert.ErrorIs(t, err, ErrGatewayRejected)
}

func TestNewOrderIDCarriesPartnerCode(t *testing.T) {
	cfg := testMomoConfig("https://example.com")
	client := NewMomoClient(cfg, NewSignatureCodec(cfg.SecretKey))

	orderID := client.NewOrderID()
	require.True(t, len(orderID) > len(cfg.PartnerCode))
	assert.Equal(t, cfg.PartnerCode, orderID[:len(cfg.PartnerCode)])
}
