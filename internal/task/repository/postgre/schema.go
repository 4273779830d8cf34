package postgre

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id                 TEXT PRIMARY KEY,
	title              TEXT NOT NULL,
	description        TEXT NOT NULL DEFAULT '',
	priority           TEXT NOT NULL DEFAULT 'medium',
	category           TEXT NOT NULL DEFAULT '',
	tags               TEXT[] NOT NULL DEFAULT '{}',
	type               TEXT NOT NULL DEFAULT 'personal',
	status             TEXT NOT NULL DEFAULT 'pending',
	due_date           TEXT NOT NULL DEFAULT '',
	due_time           TEXT NOT NULL DEFAULT '',
	reminder_enabled   BOOLEAN NOT NULL DEFAULT FALSE,
	reminder_date      TEXT NOT NULL DEFAULT '',
	reminder_time      TEXT NOT NULL DEFAULT '',
	estimated_duration INTEGER NOT NULL DEFAULT 0,
	assigned_by_id     TEXT NOT NULL DEFAULT '',
	assigned_by_name   TEXT NOT NULL DEFAULT '',
	assigned_to_id     TEXT NOT NULL,
	assigned_to_name   TEXT NOT NULL DEFAULT '',
	calendar_event_id  TEXT NOT NULL DEFAULT '',
	calendar_link      TEXT NOT NULL DEFAULT '',
	created_at         TIMESTAMPTZ NOT NULL,
	updated_at         TIMESTAMPTZ NOT NULL,
	completed_at       TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS tasks_assigned_to_created_idx ON tasks (assigned_to_id, created_at DESC);
`

const taskColumns = `id, title, description, priority, category, tags, type, status,
	due_date, due_time, reminder_enabled, reminder_date, reminder_time, estimated_duration,
	assigned_by_id, assigned_by_name, assigned_to_id, assigned_to_name,
	calendar_event_id, calendar_link, created_at, updated_at, completed_at`
