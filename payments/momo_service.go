package payments

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	config "github.com/anqnd2510/tray-homework/configs"
)

var (
	// ErrGatewayUnavailable marks transport failures: the gateway could not be
	// reached or did not answer within the client timeout.
	ErrGatewayUnavailable = errors.New("momo gateway unavailable")
	// ErrGatewayRejected marks a reachable gateway that refused the request or
	// answered with a non-conforming response.
	ErrGatewayRejected = errors.New("momo gateway rejected request")
)

const (
	initiateAttempts = 3
	initiateBackoff  = 500 * time.Millisecond

	momoPartnerName = "Test"
	momoStoreID     = "MomoTestStore"
	momoOrderInfo   = "pay with MoMo"
	momoRequestType = "payWithMethod"
	momoLang        = "vi"
)

type PaymentRequest struct {
	PartnerCode string `json:"partnerCode"`
	PartnerName string `json:"partnerName"`
	StoreID     string `json:"storeId"`
	RequestID   string `json:"requestId"`
	Amount      int64  `json:"amount"`
	OrderID     string `json:"orderId"`
	OrderInfo   string `json:"orderInfo"`
	RedirectURL string `json:"redirectUrl"`
	IPNURL      string `json:"ipnUrl"`
	Lang        string `json:"lang"`
	RequestType string `json:"requestType"`
	AutoCapture bool   `json:"autoCapture"`
	ExtraData   string `json:"extraData"`
	Signature   string `json:"signature"`
}

type PaymentResponse struct {
	PartnerCode  string `json:"partnerCode"`
	OrderID      string `json:"orderId"`
	RequestID    string `json:"requestId"`
	Amount       int64  `json:"amount"`
	ResponseTime int64  `json:"responseTime"`
	Message      string `json:"message"`
	ResultCode   int    `json:"resultCode"`
	PayURL       string `json:"payUrl"`
	Deeplink     string `json:"deeplink"`
	QRCodeURL    string `json:"qrCodeUrl"`
}

// Notification is the asynchronous IPN callback MoMo posts after the customer
// completes or abandons the payment. ResultCode 0 means the payment succeeded.
type Notification struct {
	PartnerCode  string `json:"partnerCode"`
	OrderID      string `json:"orderId"`
	RequestID    string `json:"requestId"`
	Amount       int64  `json:"amount"`
	OrderInfo    string `json:"orderInfo"`
	OrderType    string `json:"orderType"`
	TransID      int64  `json:"transId"`
	ResultCode   int    `json:"resultCode"`
	Message      string `json:"message"`
	PayType      string `json:"payType"`
	ResponseTime int64  `json:"responseTime"`
	ExtraData    string `json:"extraData"`
	Signature    string `json:"signature"`
	UserID       string `json:"userId"`
	PaymentID    string `json:"paymentId"`
}

// RawSignature rebuilds the canonical string MoMo signed on this notification.
// The field order differs from the initiation signature and is likewise fixed
// by the partner API.
func (n Notification) RawSignature() string {
	return fmt.Sprintf("partnerCode=%s&orderId=%s&requestId=%s&amount=%d&orderInfo=%s&orderType=%s&transId=%d&resultCode=%d&message=%s&payType=%s&responseTime=%d&extraData=%s",
		n.PartnerCode, n.OrderID, n.RequestID, n.Amount, n.OrderInfo, n.OrderType, n.TransID, n.ResultCode, n.Message, n.PayType, n.ResponseTime, n.ExtraData)
}

// MomoClient performs the synchronous payment-initiation call against the MoMo
// partner endpoint.
type MomoClient struct {
	cfg    config.MomoConfig
	codec  *SignatureCodec
	client *http.Client
}

func NewMomoClient(cfg config.MomoConfig, codec *SignatureCodec) *MomoClient {
	return &MomoClient{
		cfg:   cfg,
		codec: codec,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewOrderID generates the partner-scoped order identifier: partner code plus
// current epoch milliseconds, unique in practice per partner.
func (m *MomoClient) NewOrderID() string {
	return m.cfg.PartnerCode + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// Initiate signs and posts the payment-initiation request. Transport errors
// surface as ErrGatewayUnavailable, anything the gateway refused as
// ErrGatewayRejected.
func (m *MomoClient) Initiate(orderID, requestID string, amount int64) (*PaymentResponse, error) {
	extraData := ""
	rawSignature := InitiateRawSignature(
		m.cfg.AccessKey, amount, extraData, m.cfg.IPNURL, orderID,
		momoOrderInfo, m.cfg.PartnerCode, m.cfg.RedirectURL, requestID, momoRequestType,
	)

	payload := PaymentRequest{
		PartnerCode: m.cfg.PartnerCode,
		PartnerName: momoPartnerName,
		StoreID:     momoStoreID,
		RequestID:   requestID,
		Amount:      amount,
		OrderID:     orderID,
		OrderInfo:   momoOrderInfo,
		RedirectURL: m.cfg.RedirectURL,
		IPNURL:      m.cfg.IPNURL,
		Lang:        momoLang,
		RequestType: momoRequestType,
		AutoCapture: true,
		ExtraData:   extraData,
		Signature:   m.codec.Sign(rawSignature),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payment request: %v", err)
	}

	resp, err := m.post(body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrGatewayUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("MoMo API error: status %d, body: %s", resp.StatusCode, string(respBody))
		return nil, fmt.Errorf("%w: status %d", ErrGatewayRejected, resp.StatusCode)
	}

	var paymentResp PaymentResponse
	if err := json.Unmarshal(respBody, &paymentResp); err != nil {
		return nil, fmt.Errorf("%w: malformed response body", ErrGatewayRejected)
	}

	if paymentResp.ResultCode != 0 {
		log.Printf("MoMo initiation refused: code %d, message %s", paymentResp.ResultCode, paymentResp.Message)
		return nil, fmt.Errorf("%w: %s", ErrGatewayRejected, paymentResp.Message)
	}

	log.Println("✅ MoMo payment initiated successfully for order:", orderID)
	return &paymentResp, nil
}

// post sends the initiation body, retrying transport failures a bounded number
// of times with linear backoff. Each attempt rebuilds the request so the body
// reader is fresh.
func (m *MomoClient) post(body []byte) (*http.Response, error) {
	var lastErr error
	for attempt := 1; attempt <= initiateAttempts; attempt++ {
		req, err := http.NewRequest("POST", m.cfg.Endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("failed to create payment request: %v", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := m.client.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if attempt < initiateAttempts {
			log.Printf("MoMo gateway unreachable (attempt %d/%d): %v", attempt, initiateAttempts, err)
			time.Sleep(time.Duration(attempt) * initiateBackoff)
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, lastErr)
}
