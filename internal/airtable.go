package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/oviohub/airbridge"
)

// DefaultBaseURL is the public Airtable REST endpoint.
const DefaultBaseURL = "https://api.airtable.com/v0"

// AirtableClient talks to the Airtable REST API for one base.
type AirtableClient struct {
	baseURL string
	apiKey  string
	baseKey string
	httpc   *http.Client
}

// NewAirtableClient creates a client for the given base. An empty baseURL
// selects the public Airtable endpoint.
func NewAirtableClient(baseURL, apiKey, baseKey string) *AirtableClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &AirtableClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		baseKey: baseKey,
		httpc:   &http.Client{},
	}
}

// Table returns a handle on one table of the base.
func (c *AirtableClient) Table(name string) *AirtableTable {
	return &AirtableTable{client: c, name: name}
}

// do runs one API request and decodes the response body into out.
func (c *AirtableClient) do(ctx context.Context, method, rawURL string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("airtable request encode failed: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return fmt.Errorf("airtable request build failed: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("airtable request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("airtable response decode failed: %w", err)
	}
	return nil
}

// AirtableTable is a handle on one table of a base.
type AirtableTable struct {
	client *AirtableClient
	name   string
}

func (t *AirtableTable) url() string {
	return t.client.baseURL + "/" + url.PathEscape(t.client.baseKey) + "/" + url.PathEscape(t.name)
}

// recordPage is one page of a list response.
type recordPage struct {
	Records []airbridge.Record `json:"records"`
	Offset  string             `json:"offset,omitempty"`
}

// Search returns every record of the table whose column equals value,
// following offset pagination to the end.
func (t *AirtableTable) Search(ctx context.Context, column, value string) ([]airbridge.Record, error) {
	formula := fmt.Sprintf("{%s}='%s'", column, escapeFormulaValue(value))

	var records []airbridge.Record
	offset := ""
	for {
		query := url.Values{}
		query.Set("filterByFormula", formula)
		if offset != "" {
			query.Set("offset", offset)
		}

		var page recordPage
		if err := t.client.do(ctx, http.MethodGet, t.url()+"?"+query.Encode(), nil, &page); err != nil {
			return nil, err
		}
		records = append(records, page.Records...)
		if page.Offset == "" {
			return records, nil
		}
		offset = page.Offset
	}
}

// Insert appends a row to the table and returns the created record.
func (t *AirtableTable) Insert(ctx context.Context, row airbridge.Row) (airbridge.Record, error) {
	payload := struct {
		Fields airbridge.Row `json:"fields"`
	}{Fields: row}

	var rec airbridge.Record
	if err := t.client.do(ctx, http.MethodPost, t.url(), payload, &rec); err != nil {
		return airbridge.Record{}, err
	}
	return rec, nil
}

// escapeFormulaValue escapes a value for embedding in a single-quoted
// filterByFormula string literal.
func escapeFormulaValue(value string) string {
	return strings.ReplaceAll(value, "'", `\'`)
}
