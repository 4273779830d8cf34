package postgre

import (
	sq "github.com/Masterminds/squirrel"

	repo "clinic-assistant/internal/task/repository"
)

const tasksTable = "tasks"

// filtered applies the filters shared by count and list queries.
func filtered(b sq.SelectBuilder, opt repo.ListTasksOptions) sq.SelectBuilder {
	if opt.AssignedToID != "" {
		b = b.Where(sq.Eq{"assigned_to_id": opt.AssignedToID})
	}
	if opt.Status != "" {
		b = b.Where(sq.Eq{"status": opt.Status})
	}
	return b
}

func buildCountQuery(opt repo.ListTasksOptions) (string, []any, error) {
	return filtered(sq.Select("COUNT(*)").From(tasksTable), opt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// buildListQuery selects columns for a page of tasks, newest first.
func buildListQuery(columns string, opt repo.ListTasksOptions) (string, []any, error) {
	b := filtered(sq.Select(columns).From(tasksTable), opt).OrderBy("created_at DESC")
	if opt.Limit > 0 {
		b = b.Limit(uint64(opt.Limit))
	}
	if opt.Offset > 0 {
		b = b.Offset(uint64(opt.Offset))
	}
	return b.PlaceholderFormat(sq.Dollar).ToSql()
}
