package mentorhub

import (
	"context"
	"net/http"
	"strconv"
)

// InsertProject creates a project record and returns the created row.
func (c *Client) InsertProject(ctx context.Context, project Project) (*Project, error) {
	u := buildURL(c.baseURL, []string{EntityProjects}, nil)
	var out Project
	if err := c.do(ctx, "insert project", http.MethodPost, u, project, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProject updates the project identified by id with the fields set on
// project, and returns the updated row.
func (c *Client) UpdateProject(ctx context.Context, id int, project Project) (*Project, error) {
	u := buildURL(c.baseURL, []string{EntityProjects, strconv.Itoa(id)}, nil)
	var out Project
	if err := c.do(ctx, "update project", http.MethodPut, u, project, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProjects deletes the projects with the given ids and returns the
// deleted rows.
func (c *Client) DeleteProjects(ctx context.Context, ids []int) ([]Project, error) {
	if ids == nil {
		ids = []int{}
	}
	u := buildURL(c.baseURL, []string{EntityProjects}, nil)
	var out []Project
	if err := c.do(ctx, "delete projects", http.MethodDelete, u, ids, &out); err != nil {
		return nil, err
	}
	return out, nil
}
