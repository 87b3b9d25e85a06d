package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"cobranca_campo/internal/domain/entities"
	"cobranca_campo/internal/usecase/interfaces"
)

// Asaas payment gateway client.
// Documentation: https://docs.asaas.com/

const (
	productionBaseURL = "https://www.asaas.com/api/v3"
	sandboxBaseURL    = "https://sandbox.asaas.com/api/v3"

	// No outbound call may block indefinitely; a timeout surfaces to callers
	// as a generic GatewayError.
	requestTimeout = 15 * time.Second
)

// AsaasClientFactory hands out per-key clients over one shared http.Client.
// The key travels with the client value, never through shared mutable state,
// so concurrent tenants cannot observe each other's credential.

type AsaasClientFactory struct {
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.IPaymentGatewayFactory = (*AsaasClientFactory)(nil)

// NewAsaasClientFactory picks the base URL from ASAAS_ENVIRONMENT
// (production|sandbox, default sandbox). ASAAS_BASE_URL overrides both, which
// keeps local gateway mocks possible.
func NewAsaasClientFactory() *AsaasClientFactory {
	base := sandboxBaseURL
	if strings.EqualFold(strings.TrimSpace(os.Getenv("ASAAS_ENVIRONMENT")), "production") {
		base = productionBaseURL
	}
	if v := strings.TrimSpace(os.Getenv("ASAAS_BASE_URL")); v != "" {
		base = v
	}
	return &AsaasClientFactory{
		baseURL:    base,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

func (f *AsaasClientFactory) ClientFor(apiKey string) interfaces.IPaymentGateway {
	return &AsaasClient{apiKey: apiKey, baseURL: f.baseURL, httpClient: f.httpClient}
}

// AsaasClient is a stateless typed façade over the Asaas HTTP API for one API
// key. It maps every non-2xx answer to *entities.GatewayError and leaves
// retry/propagation policy entirely to the caller.

type AsaasClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.IPaymentGateway = (*AsaasClient)(nil)

// asaasErrorBody is the gateway's error envelope:
// {"errors":[{"code":"...","description":"..."}]}.
type asaasErrorBody struct {
	Errors []struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"errors"`
	Message string `json:"message"`
}

func (c *AsaasClient) request(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("access_token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[asaas][gateway] %s %s transport failure err=%v", method, path, err)
		return &entities.GatewayError{Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		gerr := &entities.GatewayError{StatusCode: resp.StatusCode, Message: resp.Status}
		var eb asaasErrorBody
		if err := json.NewDecoder(resp.Body).Decode(&eb); err == nil {
			if len(eb.Errors) > 0 {
				gerr.Code = eb.Errors[0].Code
				gerr.Message = eb.Errors[0].Description
			} else if eb.Message != "" {
				gerr.Message = eb.Message
			}
		}
		log.Printf("[asaas][gateway] %s %s status=%d code=%s", method, path, gerr.StatusCode, gerr.Code)
		return gerr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *AsaasClient) CreateCustomer(ctx context.Context, in interfaces.CreateCustomerInput) (entities.GatewayCustomer, error) {
	payload := map[string]string{"name": in.Name, "cpfCnpj": in.CpfCnpj}
	if in.Email != "" {
		payload["email"] = in.Email
	}
	if in.Phone != "" {
		payload["phone"] = in.Phone
	}

	var cust entities.GatewayCustomer
	if err := c.request(ctx, http.MethodPost, "/customers", payload, &cust); err != nil {
		return entities.GatewayCustomer{}, err
	}
	return cust, nil
}

func (c *AsaasClient) GetCustomer(ctx context.Context, customerID string) (entities.GatewayCustomer, error) {
	var cust entities.GatewayCustomer
	if err := c.request(ctx, http.MethodGet, "/customers/"+customerID, nil, &cust); err != nil {
		return entities.GatewayCustomer{}, err
	}
	return cust, nil
}

// FindCustomerByDocument searches by CPF/CNPJ. Absence is an expected branch:
// it returns a zero-ID customer with nil error.
func (c *AsaasClient) FindCustomerByDocument(ctx context.Context, cpfCnpj string) (entities.GatewayCustomer, error) {
	var page struct {
		Data []entities.GatewayCustomer `json:"data"`
	}
	path := "/customers?cpfCnpj=" + url.QueryEscape(cpfCnpj) + "&limit=1"
	if err := c.request(ctx, http.MethodGet, path, nil, &page); err != nil {
		return entities.GatewayCustomer{}, err
	}
	if len(page.Data) == 0 {
		return entities.GatewayCustomer{}, nil
	}
	return page.Data[0], nil
}

func (c *AsaasClient) RestoreCustomer(ctx context.Context, customerID string) (entities.GatewayCustomer, error) {
	var cust entities.GatewayCustomer
	if err := c.request(ctx, http.MethodPost, "/customers/"+customerID+"/restore", nil, &cust); err != nil {
		return entities.GatewayCustomer{}, err
	}
	return cust, nil
}

func (c *AsaasClient) CreatePayment(ctx context.Context, in interfaces.CreatePaymentInput) (entities.GatewayPayment, error) {
	payload := map[string]any{
		"customer":    in.Customer,
		"billingType": in.BillingType,
		"value":       in.Value,
		"dueDate":     in.DueDate,
	}
	if in.Description != "" {
		payload["description"] = in.Description
	}
	if in.ExternalReference != "" {
		payload["externalReference"] = in.ExternalReference
	}
	if in.InstallmentCount > 1 {
		payload["installmentCount"] = in.InstallmentCount
	}

	var p entities.GatewayPayment
	if err := c.request(ctx, http.MethodPost, "/payments", payload, &p); err != nil {
		return entities.GatewayPayment{}, err
	}
	return p, nil
}

func (c *AsaasClient) GetPayment(ctx context.Context, paymentID string) (entities.GatewayPayment, error) {
	var p entities.GatewayPayment
	if err := c.request(ctx, http.MethodGet, "/payments/"+paymentID, nil, &p); err != nil {
		return entities.GatewayPayment{}, err
	}
	return p, nil
}

func (c *AsaasClient) CancelPayment(ctx context.Context, paymentID string) (entities.GatewayPayment, error) {
	var p entities.GatewayPayment
	if err := c.request(ctx, http.MethodDelete, "/payments/"+paymentID, nil, &p); err != nil {
		return entities.GatewayPayment{}, err
	}
	return p, nil
}

func (c *AsaasClient) GetPixQRCode(ctx context.Context, paymentID string) (entities.PixQRCode, error) {
	var qr entities.PixQRCode
	if err := c.request(ctx, http.MethodGet, "/payments/"+paymentID+"/pixQrCode", nil, &qr); err != nil {
		return entities.PixQRCode{}, err
	}
	return qr, nil
}

func (c *AsaasClient) PayWithCreditCard(ctx context.Context, paymentID string, in interfaces.CreditCardInput) (entities.GatewayPayment, error) {
	payload := map[string]any{
		"creditCard": map[string]string{
			"holderName":  in.HolderName,
			"number":      in.Number,
			"expiryMonth": in.ExpiryMonth,
			"expiryYear":  in.ExpiryYear,
			"ccv":         in.CCV,
		},
		"creditCardHolderInfo": map[string]string{
			"name":          in.HolderInfo.Name,
			"email":         in.HolderInfo.Email,
			"cpfCnpj":       in.HolderInfo.CpfCnpj,
			"postalCode":    in.HolderInfo.PostalCode,
			"addressNumber": in.HolderInfo.AddressNumber,
			"phone":         in.HolderInfo.Phone,
		},
	}

	var p entities.GatewayPayment
	if err := c.request(ctx, http.MethodPost, "/payments/"+paymentID+"/payWithCreditCard", payload, &p); err != nil {
		return entities.GatewayPayment{}, err
	}
	return p, nil
}
