package mentorhub

import (
	"context"
	"net/http"
	"strconv"
)

// InsertStudent creates a student record and returns the created row.
func (c *Client) InsertStudent(ctx context.Context, student Student) (*Student, error) {
	u := buildURL(c.baseURL, []string{EntityStudents}, nil)
	var out Student
	if err := c.do(ctx, "insert student", http.MethodPost, u, student, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStudent updates the student identified by id with the fields set on
// student, and returns the updated row.
func (c *Client) UpdateStudent(ctx context.Context, id int, student Student) (*Student, error) {
	u := buildURL(c.baseURL, []string{EntityStudents, strconv.Itoa(id)}, nil)
	var out Student
	if err := c.do(ctx, "update student", http.MethodPut, u, student, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteStudents deletes the students with the given ids and returns the
// deleted rows. An empty ids list is still sent; the backend decides.
func (c *Client) DeleteStudents(ctx context.Context, ids []int) ([]Student, error) {
	if ids == nil {
		ids = []int{}
	}
	u := buildURL(c.baseURL, []string{EntityStudents}, nil)
	var out []Student
	if err := c.do(ctx, "delete students", http.MethodDelete, u, ids, &out); err != nil {
		return nil, err
	}
	return out, nil
}
