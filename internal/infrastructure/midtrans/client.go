package midtrans

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fundunity/donation-service/internal/domain"
)

// Client talks to the Midtrans Snap API (charge creation) and Core API
// (authoritative status lookup). It implements domain.PaymentGateway.
type Client struct {
	SnapBaseURL    string
	CoreAPIBaseURL string
	serverKey      string
	httpClient     *http.Client
}

func NewClient(snapBaseURL, coreAPIBaseURL, serverKey string) *Client {
	return &Client{
		SnapBaseURL:    strings.TrimRight(snapBaseURL, "/"),
		CoreAPIBaseURL: strings.TrimRight(coreAPIBaseURL, "/"),
		serverKey:      serverKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) CreateCharge(ctx context.Context, req *domain.ChargeRequest) (*domain.ChargeSession, error) {
	chargeRequest := snapChargeRequest{
		TransactionDetails: transactionDetails{
			OrderID:     req.OrderID,
			GrossAmount: req.GrossAmount,
		},
		CustomerDetails: customerDetails{
			FirstName: req.DonorName,
			Email:     req.DonorEmail,
		},
		ItemDetails: []itemDetail{
			{
				ID:       "donasi",
				Name:     req.ItemName,
				Quantity: 1,
				Price:    req.GrossAmount,
			},
		},
		CreditCard: creditCard{Secure: true},
	}
	if req.FinishURL != "" {
		chargeRequest.Callbacks = &callbacks{Finish: req.FinishURL}
	}

	requestBodyBytes, err := json.Marshal(chargeRequest)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/snap/v1/transactions", c.SnapBaseURL), bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if req.NotificationURL != "" {
		httpReq.Header.Set("X-Override-Notification", req.NotificationURL)
	}
	httpReq.SetBasicAuth(c.serverKey, "")

	response, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, decodeError(responseBodyBytes, response.Status)
	}

	var chargeResponse snapChargeResponse
	if err := json.Unmarshal(responseBodyBytes, &chargeResponse); err != nil {
		return nil, err
	}
	if chargeResponse.Token == "" {
		return nil, errors.New("snap response carried no token")
	}

	return &domain.ChargeSession{
		Token:       chargeResponse.Token,
		RedirectURL: chargeResponse.RedirectURL,
	}, nil
}

func (c *Client) GetTransactionStatus(ctx context.Context, orderID string) (*domain.GatewayReport, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/v2/%s/status", c.CoreAPIBaseURL, url.PathEscape(orderID)), nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.SetBasicAuth(c.serverKey, "")

	response, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, decodeError(responseBodyBytes, response.Status)
	}

	var statusResponse transactionStatusResponse
	if err := json.Unmarshal(responseBodyBytes, &statusResponse); err != nil {
		return nil, err
	}

	report := &domain.GatewayReport{
		OrderID:           statusResponse.OrderID,
		StatusCode:        statusResponse.StatusCode,
		GrossAmount:       statusResponse.GrossAmount,
		TransactionStatus: statusResponse.TransactionStatus,
		FraudStatus:       statusResponse.FraudStatus,
		PaymentType:       statusResponse.PaymentType,
		TransactionTime:   statusResponse.TransactionTime,
		BillKey:           statusResponse.BillKey,
	}
	for _, va := range statusResponse.VANumbers {
		report.VANumbers = append(report.VANumbers, domain.VirtualAccount{
			Bank:     va.Bank,
			VANumber: va.VANumber,
		})
	}
	return report, nil
}

func decodeError(body []byte, httpStatus string) error {
	var errResponse errorResponse
	if err := json.Unmarshal(body, &errResponse); err == nil {
		if len(errResponse.ErrorMessages) > 0 {
			return errors.New(strings.Join(errResponse.ErrorMessages, "; "))
		}
		if errResponse.StatusMessage != "" {
			return errors.New(errResponse.StatusMessage)
		}
	}
	return fmt.Errorf("midtrans responded %s", httpStatus)
}
