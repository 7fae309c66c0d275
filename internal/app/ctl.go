package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/campusbridge-hq/mentorhub-client/internal/config"
	"github.com/campusbridge-hq/mentorhub-client/pkg/mentorhub"
)

const usage = `mentorhubctl <command> [args]

commands:
  columns <entity>                    list the columns of an entity
  search  <entity> <column> <value>   records whose column matches value
  sort    <entity> <column> <order>   records ordered by column (ascending|descending)
  all     <entity>                    every record of an entity
  insert  <entity> <json>             create one record from a JSON document
  update  <entity> <id> <json>        update one record by id
  delete  <entity> <id>[,<id>...]     delete records by id list
  import  <entity> <file>             bulk-insert records from a YAML/JSON file`

// Ctl executes one backend operation per invocation and writes the JSON
// result to its output writer.
type Ctl struct {
	cfg *config.Config
	api mentorhub.API
	out io.Writer
	log *zap.SugaredLogger
}

// NewCtl builds the CLI runtime from config.
func NewCtl(cfg *config.Config, log *zap.SugaredLogger) (*Ctl, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	client, err := mentorhub.NewClient(mentorhub.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.RequestTimeout,
		Logger:  log,
	})
	if err != nil {
		return nil, fmt.Errorf("build client: %w", err)
	}

	return &Ctl{cfg: cfg, api: client, out: os.Stdout, log: log}, nil
}

// Run dispatches the CLI arguments (without the program name) to the backend
// and prints the result.
func (c *Ctl) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command\n\nusage: %s", usage)
	}

	cmd, rest := args[0], args[1:]
	res, err := c.dispatch(ctx, cmd, rest)
	if err != nil {
		return err
	}
	return c.printJSON(res)
}

func (c *Ctl) dispatch(ctx context.Context, cmd string, args []string) (any, error) {
	switch cmd {
	case "columns":
		if err := wantArgs(cmd, args, 1); err != nil {
			return nil, err
		}
		return c.api.FetchEntityColumns(ctx, args[0])
	case "search":
		if err := wantArgs(cmd, args, 3); err != nil {
			return nil, err
		}
		return c.api.SearchRecords(ctx, args[0], args[1], args[2])
	case "sort":
		if err := wantArgs(cmd, args, 3); err != nil {
			return nil, err
		}
		return c.api.SortRecords(ctx, args[0], args[1], args[2])
	case "all":
		if err := wantArgs(cmd, args, 1); err != nil {
			return nil, err
		}
		return c.api.SelectAllRecords(ctx, args[0])
	case "insert":
		if err := wantArgs(cmd, args, 2); err != nil {
			return nil, err
		}
		return c.insert(ctx, args[0], []byte(args[1]))
	case "update":
		if err := wantArgs(cmd, args, 3); err != nil {
			return nil, err
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", args[1], err)
		}
		return c.update(ctx, args[0], id, []byte(args[2]))
	case "delete":
		if err := wantArgs(cmd, args, 2); err != nil {
			return nil, err
		}
		ids, err := parseIDs(args[1])
		if err != nil {
			return nil, err
		}
		return c.delete(ctx, args[0], ids)
	case "import":
		if err := wantArgs(cmd, args, 2); err != nil {
			return nil, err
		}
		return c.importRecords(ctx, args[0], args[1])
	default:
		return nil, fmt.Errorf("unknown command %q\n\nusage: %s", cmd, usage)
	}
}

func (c *Ctl) insert(ctx context.Context, entity string, payload []byte) (any, error) {
	switch entity {
	case mentorhub.EntityStudents:
		var rec mentorhub.Student
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("decode student: %w", err)
		}
		return c.api.InsertStudent(ctx, rec)
	case mentorhub.EntityMentors:
		var rec mentorhub.Mentor
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("decode mentor: %w", err)
		}
		return c.api.InsertMentor(ctx, rec)
	case mentorhub.EntityProjects:
		var rec mentorhub.Project
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		return c.api.InsertProject(ctx, rec)
	default:
		return nil, unknownEntity(entity)
	}
}

func (c *Ctl) update(ctx context.Context, entity string, id int, payload []byte) (any, error) {
	switch entity {
	case mentorhub.EntityStudents:
		var rec mentorhub.Student
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("decode student: %w", err)
		}
		return c.api.UpdateStudent(ctx, id, rec)
	case mentorhub.EntityMentors:
		var rec mentorhub.Mentor
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("decode mentor: %w", err)
		}
		return c.api.UpdateMentor(ctx, id, rec)
	case mentorhub.EntityProjects:
		var rec mentorhub.Project
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		return c.api.UpdateProject(ctx, id, rec)
	default:
		return nil, unknownEntity(entity)
	}
}

func (c *Ctl) delete(ctx context.Context, entity string, ids []int) (any, error) {
	switch entity {
	case mentorhub.EntityStudents:
		return c.api.DeleteStudents(ctx, ids)
	case mentorhub.EntityMentors:
		return c.api.DeleteMentors(ctx, ids)
	case mentorhub.EntityProjects:
		return c.api.DeleteProjects(ctx, ids)
	default:
		return nil, unknownEntity(entity)
	}
}

func (c *Ctl) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

func wantArgs(cmd string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s expects %d argument(s), got %d\n\nusage: %s", cmd, n, len(args), usage)
	}
	return nil
}

func parseIDs(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", p, err)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no ids given")
	}
	return ids, nil
}

func unknownEntity(entity string) error {
	return fmt.Errorf("unknown entity %q (expected students, mentors or projects)", entity)
}
