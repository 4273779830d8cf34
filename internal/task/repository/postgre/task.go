package postgre

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"clinic-assistant/internal/model"
	repo "clinic-assistant/internal/task/repository"
)

// CreateTask inserts a task row and returns the stored entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	t := opt.Task
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = t.CreatedAt
	}
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}

	query := fmt.Sprintf(`
		INSERT INTO tasks (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		RETURNING %s`, taskColumns, taskColumns)

	created, err := scanTask(r.db.QueryRow(ctx, query,
		t.ID, t.Title, t.Description, t.Priority, t.Category, tags, t.Type, string(t.Status),
		t.DueDate, t.DueTime, t.ReminderEnabled, t.ReminderDate, t.ReminderTime, t.EstimatedDuration,
		t.AssignedByID, t.AssignedByName, t.AssignedToID, t.AssignedToName,
		t.CalendarEventID, t.CalendarLink, t.CreatedAt, t.UpdatedAt, t.CompletedAt,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return created, nil
}

// GetTask returns a zero-value Task (ID == "") when not found.
func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = $1 LIMIT 1`, taskColumns)

	t, err := scanTask(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns a page of tasks and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	countQuery, countArgs, err := buildCountQuery(opt)
	if err != nil {
		r.l.Errorf(ctx, "%s build count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	var total int
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query, args, err := buildListQuery(taskColumns, opt)
	if err != nil {
		r.l.Errorf(ctx, "%s build list: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

// UpdateTask applies the non-empty fields of opt. Returns a zero-value Task when not found.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		UPDATE tasks
		SET status            = COALESCE(NULLIF($1, ''), status),
		    calendar_event_id = COALESCE(NULLIF($2, ''), calendar_event_id),
		    calendar_link     = COALESCE(NULLIF($3, ''), calendar_link),
		    completed_at      = COALESCE($4, completed_at),
		    updated_at        = $5
		WHERE id = $6
		RETURNING %s`, taskColumns)

	t, err := scanTask(r.db.QueryRow(ctx, query,
		string(opt.Status), opt.CalendarEventID, opt.CalendarLink, opt.CompletedAt, opt.UpdatedAt, opt.ID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

func scanTask(row pgx.Row) (model.Task, error) {
	var (
		t      model.Task
		status string
	)
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Priority, &t.Category, &t.Tags, &t.Type, &status,
		&t.DueDate, &t.DueTime, &t.ReminderEnabled, &t.ReminderDate, &t.ReminderTime, &t.EstimatedDuration,
		&t.AssignedByID, &t.AssignedByName, &t.AssignedToID, &t.AssignedToName,
		&t.CalendarEventID, &t.CalendarLink, &t.CreatedAt, &t.UpdatedAt, &t.CompletedAt,
	)
	if err != nil {
		return model.Task{}, err
	}
	t.Status = model.TaskStatus(status)
	return t, nil
}
