package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"profiling-server/internal/logger"

	"github.com/go-resty/resty/v2"
	"github.com/gorilla/websocket"
)

var ErrNotFound = errors.New("not found")

type apiError struct {
	Message string `json:"message"`
}

type LookupItem struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

type lookupResponse struct {
	Category string       `json:"category"`
	Data     []LookupItem `json:"data"`
}

type RecordChanged struct {
	Entity     string    `json:"entity"`
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Client talks to a running profiling server.
type Client struct {
	http    *resty.Client
	baseURL string
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(300 * time.Millisecond).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		}).
		SetError(&apiError{})
	if token != "" {
		client.SetAuthToken(token)
	}

	return &Client{http: client, baseURL: strings.TrimRight(baseURL, "/")}
}

func (c *Client) Lookup(ctx context.Context, category, query string) ([]LookupItem, error) {
	var result lookupResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("category", category).
		SetQueryParam("q", query).
		SetResult(&result).
		Get("/v1/lookups/{category}")
	if err != nil {
		return nil, fmt.Errorf("requesting lookups: %w", err)
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}

	return result.Data, nil
}

// ExportHouseholds streams the masterlist workbook into path.
func (c *Client) ExportHouseholds(ctx context.Context, purok, path string) error {
	req := c.http.R().
		SetContext(ctx).
		SetOutput(path)
	if purok != "" {
		req.SetQueryParam("purok", purok)
	}

	resp, err := req.Get("/v1/households/export")
	if err != nil {
		return fmt.Errorf("downloading masterlist: %w", err)
	}
	return responseError(resp)
}

// TailRecords prints record changes until ctx is done or the server
// closes the stream.
func (c *Client) TailRecords(ctx context.Context, entities []string, handle func(RecordChanged)) error {
	endpoint, err := url.Parse(c.baseURL + "/ws/records")
	if err != nil {
		return fmt.Errorf("parsing server url: %w", err)
	}
	switch endpoint.Scheme {
	case "https":
		endpoint.Scheme = "wss"
	default:
		endpoint.Scheme = "ws"
	}
	if len(entities) > 0 {
		endpoint.RawQuery = url.Values{"entity": {strings.Join(entities, ",")}}.Encode()
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, endpoint.String(), nil)
	if err != nil {
		if resp != nil {
			return fmt.Errorf("opening record feed: %s", resp.Status)
		}
		return fmt.Errorf("opening record feed: %w", err)
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
		conn.Close()
	}()

	for {
		var change RecordChanged
		if err := conn.ReadJSON(&change); err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("reading record feed: %w", err)
		}
		logger.Debug("record change received", "entity", change.Entity, "id", change.ID)
		handle(change)
	}
}

func responseError(resp *resty.Response) error {
	if !resp.IsError() {
		return nil
	}

	message := resp.Status()
	if body, ok := resp.Error().(*apiError); ok && body.Message != "" {
		message = body.Message
	}
	if resp.StatusCode() == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	}
	return fmt.Errorf("server replied %d: %s", resp.StatusCode(), message)
}
