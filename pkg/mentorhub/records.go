package mentorhub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// FetchEntityColumns returns the column names the backend exposes for entity.
// Unknown entities yield an empty list; the backend owns that decision.
func (c *Client) FetchEntityColumns(ctx context.Context, entity string) ([]string, error) {
	u := buildURL(c.baseURL, []string{entity, "columns"}, nil)
	var cols []string
	if err := c.do(ctx, fmt.Sprintf("fetch %s columns", entity), http.MethodGet, u, nil, &cols); err != nil {
		return nil, err
	}
	return cols, nil
}

// SearchRecords returns the records of entity whose column exactly matches
// value. The response shape is backend-defined and returned verbatim; value
// stays a string end to end, the backend coerces integer columns itself.
func (c *Client) SearchRecords(ctx context.Context, entity, column, value string) (json.RawMessage, error) {
	u := buildURL(c.baseURL, []string{"search"}, []queryParam{
		{"entity", entity},
		{"column", column},
		{"value", value},
	})
	var raw json.RawMessage
	if err := c.do(ctx, fmt.Sprintf("search %s records", entity), http.MethodGet, u, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// SortRecords returns all records of entity ordered by column. order is a
// free-form direction string such as "ascending" or "descending".
func (c *Client) SortRecords(ctx context.Context, entity, column, order string) (json.RawMessage, error) {
	u := buildURL(c.baseURL, []string{"sort"}, []queryParam{
		{"entity", entity},
		{"column", column},
		{"order", order},
	})
	var raw json.RawMessage
	if err := c.do(ctx, fmt.Sprintf("sort %s records", entity), http.MethodGet, u, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// SelectAllRecords returns every record of entity, unpaginated.
func (c *Client) SelectAllRecords(ctx context.Context, entity string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.selectAll(ctx, entity, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// AllStudents returns every student record, decoded.
func (c *Client) AllStudents(ctx context.Context) ([]Student, error) {
	var out []Student
	if err := c.selectAll(ctx, EntityStudents, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllMentors returns every mentor record, decoded.
func (c *Client) AllMentors(ctx context.Context) ([]Mentor, error) {
	var out []Mentor
	if err := c.selectAll(ctx, EntityMentors, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllProjects returns every project record, decoded.
func (c *Client) AllProjects(ctx context.Context) ([]Project, error) {
	var out []Project
	if err := c.selectAll(ctx, EntityProjects, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) selectAll(ctx context.Context, entity string, out any) error {
	u := buildURL(c.baseURL, []string{"all"}, []queryParam{{"entity", entity}})
	return c.do(ctx, fmt.Sprintf("select all %s records", entity), http.MethodGet, u, nil, out)
}
