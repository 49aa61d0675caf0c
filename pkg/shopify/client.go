package shopify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/storepulse/storepulse-backend/pkg/config"
	pkgerrors "github.com/storepulse/storepulse-backend/pkg/errors"
	"github.com/storepulse/storepulse-backend/pkg/logger"
)

const accessTokenHeader = "X-Shopify-Access-Token"

var (
	errLoggerRequired = errors.New("shopify logger is required")
	errDomainRequired = errors.New("shopify store domain is required")
	errTokenRequired  = errors.New("shopify access token is required")
)

// Credentials identify a single store against the Admin API.
type Credentials struct {
	Domain      string
	AccessToken string
}

func (c Credentials) validate() error {
	if strings.TrimSpace(c.Domain) == "" {
		return errDomainRequired
	}
	if strings.TrimSpace(c.AccessToken) == "" {
		return errTokenRequired
	}
	return nil
}

// Client wraps the Shopify Admin REST API with centralized auth headers,
// timeouts, and error mapping. One client serves every tenant; credentials
// are supplied per call.
type Client struct {
	httpClient *http.Client
	apiVersion string
	pageSize   int
	scheme     string
	logger     *logger.Logger
}

// NewClient builds the Admin API wrapper from the service configuration.
func NewClient(cfg config.ShopifyConfig, logg *logger.Logger) (*Client, error) {
	if logg == nil {
		return nil, errLoggerRequired
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		apiVersion: cfg.APIVersion,
		pageSize:   cfg.PageSize,
		scheme:     "https",
		logger:     logg,
	}, nil
}

// FetchProducts pulls the first page of products for the store.
func (c *Client) FetchProducts(ctx context.Context, creds Credentials) ([]Product, error) {
	query := url.Values{"limit": {strconv.Itoa(c.pageSize)}}

	var payload productsResponse
	if err := c.get(ctx, creds, "products", query, &payload); err != nil {
		return nil, err
	}
	return payload.Products, nil
}

// FetchOrders pulls the first page of orders for the store, any status.
func (c *Client) FetchOrders(ctx context.Context, creds Credentials) ([]Order, error) {
	query := url.Values{
		"limit":  {strconv.Itoa(c.pageSize)},
		"status": {"any"},
	}

	var payload ordersResponse
	if err := c.get(ctx, creds, "orders", query, &payload); err != nil {
		return nil, err
	}
	return payload.Orders, nil
}

func (c *Client) get(ctx context.Context, creds Credentials, resource string, query url.Values, out any) error {
	if err := creds.validate(); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, err.Error())
	}

	endpoint := fmt.Sprintf("%s://%s/admin/api/%s/%s.json", c.scheme, creds.Domain, c.apiVersion, resource)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "building shopify request")
	}
	req.Header.Set(accessTokenHeader, creds.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "calling shopify admin api").WithDetails(map[string]any{
			"domain":   creds.Domain,
			"resource": resource,
		})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Warn(c.logger.WithFields(ctx, map[string]any{
			"domain":   creds.Domain,
			"resource": resource,
			"status":   resp.StatusCode,
		}), "shopify admin api returned non-200")

		return pkgerrors.New(pkgerrors.CodeDependency, "shopify admin api request failed").WithDetails(map[string]any{
			"domain":   creds.Domain,
			"resource": resource,
			"status":   resp.StatusCode,
			"body":     strings.TrimSpace(string(body)),
		})
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decoding shopify response").WithDetails(map[string]any{
			"domain":   creds.Domain,
			"resource": resource,
		})
	}
	return nil
}
