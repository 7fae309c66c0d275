package mentorhub

import (
	"context"
	"net/http"
	"strconv"
)

// InsertMentor creates a mentor record and returns the created row.
func (c *Client) InsertMentor(ctx context.Context, mentor Mentor) (*Mentor, error) {
	u := buildURL(c.baseURL, []string{EntityMentors}, nil)
	var out Mentor
	if err := c.do(ctx, "insert mentor", http.MethodPost, u, mentor, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMentor updates the mentor identified by id with the fields set on
// mentor, and returns the updated row.
func (c *Client) UpdateMentor(ctx context.Context, id int, mentor Mentor) (*Mentor, error) {
	u := buildURL(c.baseURL, []string{EntityMentors, strconv.Itoa(id)}, nil)
	var out Mentor
	if err := c.do(ctx, "update mentor", http.MethodPut, u, mentor, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteMentors deletes the mentors with the given ids and returns the
// deleted rows.
func (c *Client) DeleteMentors(ctx context.Context, ids []int) ([]Mentor, error) {
	if ids == nil {
		ids = []int{}
	}
	u := buildURL(c.baseURL, []string{EntityMentors}, nil)
	var out []Mentor
	if err := c.do(ctx, "delete mentors", http.MethodDelete, u, ids, &out); err != nil {
		return nil, err
	}
	return out, nil
}
