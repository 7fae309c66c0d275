package mentorhub

import (
	"context"
	"encoding/json"
)

// API is the full operation surface of the MentorHub backend client. Callers
// that want to stub the backend in tests can depend on this interface instead
// of *Client.
type API interface {
	FetchEntityColumns(ctx context.Context, entity string) ([]string, error)
	SearchRecords(ctx context.Context, entity, column, value string) (json.RawMessage, error)
	SortRecords(ctx context.Context, entity, column, order string) (json.RawMessage, error)
	SelectAllRecords(ctx context.Context, entity string) (json.RawMessage, error)

	AllStudents(ctx context.Context) ([]Student, error)
	AllMentors(ctx context.Context) ([]Mentor, error)
	AllProjects(ctx context.Context) ([]Project, error)

	InsertStudent(ctx context.Context, student Student) (*Student, error)
	UpdateStudent(ctx context.Context, id int, student Student) (*Student, error)
	DeleteStudents(ctx context.Context, ids []int) ([]Student, error)

	InsertMentor(ctx context.Context, mentor Mentor) (*Mentor, error)
	UpdateMentor(ctx context.Context, id int, mentor Mentor) (*Mentor, error)
	DeleteMentors(ctx context.Context, ids []int) ([]Mentor, error)

	InsertProject(ctx context.Context, project Project) (*Project, error)
	UpdateProject(ctx context.Context, id int, project Project) (*Project, error)
	DeleteProjects(ctx context.Context, ids []int) ([]Project, error)
}

var _ API = (*Client)(nil)
