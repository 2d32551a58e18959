package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/wellwatch/well-alarm-mgmt/internal/pkg/infrastructure/logging"
	"github.com/wellwatch/well-alarm-mgmt/internal/pkg/infrastructure/tracing"
	"github.com/wellwatch/well-alarm-mgmt/pkg/types"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrDegraded   = errors.New("degraded result")
)

type AlarmClient interface {
	GetRtuAlarms(ctx context.Context, assetID, customerID string) ([]types.AlarmData, error)
	GetHostAlarms(ctx context.Context, assetID, customerID string) ([]types.AlarmData, error)
	GetFacilityTagAlarms(ctx context.Context, assetID, customerID string) ([]types.AlarmData, error)
	GetCameraAlarms(ctx context.Context, assetID, customerID string) ([]types.AlarmData, error)
	GetFacilityHeader(ctx context.Context, assetID string) (types.FacilityHeaderSummary, error)
}

type alarmClient struct {
	url        string
	httpClient *http.Client
}

var tracer = otel.Tracer("well-alarm-mgmt-client")

// New creates a client for the alarm api. When tokenURL is set every request
// carries a client credentials token, and a first token is fetched up front.
func New(ctx context.Context, alarmMgmtURL, tokenURL, clientID, clientSecret string) (AlarmClient, error) {
	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	if tokenURL != "" {
		oauthConfig := &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
		}

		ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)

		if _, err := oauthConfig.Token(ctx); err != nil {
			return nil, fmt.Errorf("failed to get client credentials from %s: %w", tokenURL, err)
		}

		httpClient = oauthConfig.Client(ctx)
	}

	return &alarmClient{
		url:        strings.TrimSuffix(alarmMgmtURL, "/"),
		httpClient: httpClient,
	}, nil
}

func (c *alarmClient) GetRtuAlarms(ctx context.Context, assetID, customerID string) ([]types.AlarmData, error) {
	return c.getAlarms(ctx, "get-rtu-alarms", assetID, "rtu", customerID)
}

func (c *alarmClient) GetHostAlarms(ctx context.Context, assetID, customerID string) ([]types.AlarmData, error) {
	return c.getAlarms(ctx, "get-host-alarms", assetID, "host", customerID)
}

func (c *alarmClient) GetFacilityTagAlarms(ctx context.Context, assetID, customerID string) ([]types.AlarmData, error) {
	return c.getAlarms(ctx, "get-facility-tag-alarms", assetID, "facility-tags", customerID)
}

func (c *alarmClient) GetCameraAlarms(ctx context.Context, assetID, customerID string) ([]types.AlarmData, error) {
	return c.getAlarms(ctx, "get-camera-alarms", assetID, "camera", customerID)
}

func (c *alarmClient) getAlarms(ctx context.Context, spanName, assetID, family, customerID string) ([]types.AlarmData, error) {
	var err error
	ctx, span := tracer.Start(ctx, spanName)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	path := fmt.Sprintf("/api/v0/assets/%s/alarms/%s", url.PathEscape(assetID), family)
	if customerID != "" {
		path += "?customerID=" + url.QueryEscape(customerID)
	}

	result := []types.AlarmData{}
	err = c.get(ctx, path, &result)
	if err != nil {
		return []types.AlarmData{}, err
	}

	return result, nil
}

func (c *alarmClient) GetFacilityHeader(ctx context.Context, assetID string) (types.FacilityHeaderSummary, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-facility-header")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	summary := types.FacilityHeaderSummary{}
	err = c.get(ctx, fmt.Sprintf("/api/v0/assets/%s/facility-header", url.PathEscape(assetID)), &summary)

	return summary, err
}

type response struct {
	Data     json.RawMessage `json:"data"`
	Degraded bool            `json:"degraded"`
	Error    string          `json:"error"`
}

func (c *alarmClient) get(ctx context.Context, path string, data any) error {
	log := logging.GetLoggerFromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Add("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to retrieve alarms: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	r := response{}
	if len(respBody) > 0 {
		if err = json.Unmarshal(respBody, &r); err != nil {
			return fmt.Errorf("failed to unmarshal response body: %w", err)
		}
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, r.Error)
	case http.StatusServiceUnavailable:
		log.Warn().Str("path", path).Msg("alarm service returned a degraded result")
		return fmt.Errorf("%w: %s", ErrDegraded, r.Error)
	default:
		return fmt.Errorf("request failed with status code %d", resp.StatusCode)
	}

	if err = json.Unmarshal(r.Data, data); err != nil {
		return fmt.Errorf("failed to unmarshal response data: %w", err)
	}

	return nil
}
