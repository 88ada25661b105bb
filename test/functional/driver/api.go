package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (d *APIDriver) do(method, path string, body any) (*http.Response, error) {
	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewBuffer(payload)
	} else {
		reader = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, d.baseURL+path, reader)
	if err != nil {
		panic(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return d.client.Do(req)
}

func (d *APIDriver) GetHealthz() (*http.Response, error) {
	return d.do(http.MethodGet, "/healthz", nil)
}

func (d *APIDriver) SearchLookup(category, query string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/lookups/%s?q=%s", category, url.QueryEscape(query)), nil)
}

func (d *APIDriver) CreateResident(resident map[string]any) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/residents", resident)
}

func (d *APIDriver) GetResident(id string) (*http.Response, error) {
	return d.do(http.MethodGet, "/v1/residents/"+id, nil)
}

func (d *APIDriver) FindDuplicates(resident map[string]any) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/residents/duplicates", resident)
}

func (d *APIDriver) CreateHousehold(household map[string]any) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/households", household)
}

func (d *APIDriver) GetHousehold(id string) (*http.Response, error) {
	return d.do(http.MethodGet, "/v1/households/"+id, nil)
}

func (d *APIDriver) ExportHouseholds() (*http.Response, error) {
	return d.do(http.MethodGet, "/v1/households/export", nil)
}

func (d *APIDriver) CreateFamily(family map[string]any) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/families", family)
}

func (d *APIDriver) GetRecordHistory(entity, id string) (*http.Response, error) {
	return d.do(http.MethodGet, "/v1/records/"+entity+"/"+id+"/history", nil)
}

func (d *APIDriver) StartProfilingSession() (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/profiling/sessions", nil)
}

func (d *APIDriver) GetProfilingSession(id string) (*http.Response, error) {
	return d.do(http.MethodGet, "/v1/profiling/sessions/"+id, nil)
}

func (d *APIDriver) SaveProfilingStep(id, step string, payload any) (*http.Response, error) {
	return d.do(http.MethodPut, fmt.Sprintf("/v1/profiling/sessions/%s/steps/%s", id, step), payload)
}

func (d *APIDriver) MoveProfilingSession(id, direction string) (*http.Response, error) {
	return d.do(http.MethodPost, fmt.Sprintf("/v1/profiling/sessions/%s/%s", id, direction), nil)
}

func (d *APIDriver) SubmitProfilingSession(id string) (*http.Response, error) {
	return d.do(http.MethodPost, fmt.Sprintf("/v1/profiling/sessions/%s/submit", id), nil)
}

// ConnectRecordFeed opens the record feed filtered by entities.
func (d *APIDriver) ConnectRecordFeed(entities ...string) (*websocket.Conn, error) {
	endpoint := strings.Replace(d.baseURL, "http", "ws", 1) + "/ws/records"
	if len(entities) > 0 {
		endpoint += "?entity=" + url.QueryEscape(strings.Join(entities, ","))
	}
	conn, _, err := websocket.DefaultDialer.Dial(endpoint, nil)
	return conn, err
}
