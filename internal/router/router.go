package router

import (
	"context"
	"fmt"
	"strings"

	"clinic-assistant/internal/model"
	"clinic-assistant/pkg/taskparser"
)

// Route picks the first matching branch: task capture, task list, statistics,
// customer list, then the caller's role table. It always returns a reply.
func (r *KeywordRouter) Route(ctx context.Context, input Input) Output {
	lower := strings.ToLower(strings.TrimSpace(input.Text))

	out, ok := r.createTask(ctx, input)
	if !ok {
		out = r.match(ctx, input, lower)
	}

	r.l.Debugf(ctx, "%s: role=%s intent=%s task_created=%v", LogPrefixRoute, input.Role, out.Intent, out.TaskCreated)
	return out
}

func (r *KeywordRouter) match(ctx context.Context, input Input, lower string) Output {
	switch {
	case containsAny(lower, taskWords) && containsAny(lower, viewWords):
		call(ctx, input.Callbacks.OnViewTasks)
		return Output{
			Content:     msgViewTasks,
			Suggestions: []string{ChipPriorityTasks, ChipViewReport},
			Intent:      IntentViewTasks,
		}

	case containsAny(lower, statsWords):
		s := input.Stats
		return Output{
			Content:     fmt.Sprintf(msgStats, s.TotalRecords, s.PendingExamination, s.InProgress, s.Completed, s.Returned),
			Suggestions: []string{ChipSummaryReport, ChipWeekStats},
			Intent:      IntentStats,
		}

	case containsAny(lower, customerWords):
		return Output{
			Content:     msgCustomers,
			Suggestions: []string{ChipFindPatient, ChipViewRecords},
			Intent:      IntentCustomers,
		}
	}

	rules, ok := r.roles[input.Role]
	if !ok {
		return Output{
			Content:     fmt.Sprintf(msgEcho, input.Text),
			Suggestions: []string{},
			Intent:      IntentEcho,
		}
	}

	for _, rl := range rules {
		if rl.fallback || containsAny(lower, rl.keywords) {
			if rl.action != nil {
				call(ctx, rl.action(input.Callbacks))
			}
			return Output{
				Content:     rl.content(input.Stats),
				Suggestions: append([]string(nil), rl.suggestions...),
				Intent:      rl.intent,
			}
		}
	}

	// Every role table ends with a fallback rule.
	return Output{Content: fmt.Sprintf(msgEcho, input.Text), Suggestions: []string{}, Intent: IntentEcho}
}

// createTask reports false when the message should not be captured as a task.
func (r *KeywordRouter) createTask(ctx context.Context, input Input) (Output, bool) {
	if r.parser == nil || input.CurrentUser == nil || input.Callbacks.OnCreateTask == nil {
		return Output{}, false
	}

	var assignedBy *taskparser.Person
	if input.AssignedBy != nil {
		assignedBy = toPerson(*input.AssignedBy)
	}

	task := r.parser.Parse(input.Text, assignedBy)
	if task == nil {
		return Output{}, false
	}
	task.AssignedTo = toPerson(*input.CurrentUser)

	if err := input.Callbacks.OnCreateTask(ctx, *task); err != nil {
		r.l.Errorf(ctx, "%s: OnCreateTask: %v", LogPrefixCreateTask, err)
		return Output{
			Content:     fmt.Sprintf(msgTaskFailed, task.Title),
			Suggestions: []string{ChipViewTasks},
			Task:        task,
			Intent:      IntentCreateTaskFail,
		}, true
	}

	return Output{
		Content:     confirmation(task),
		Suggestions: []string{ChipPriorityTasks, ChipGuide, ChipViewTasks},
		TaskCreated: true,
		Task:        task,
		Intent:      IntentCreateTask,
	}, true
}

func confirmation(t *taskparser.ParsedTask) string {
	var b strings.Builder
	fmt.Fprintf(&b, msgTaskCreated, t.Title)

	label, ok := priorityLabels[string(t.Priority)]
	if !ok {
		label = string(t.Priority)
	}
	fmt.Fprintf(&b, msgTaskPriority, label)

	if due := joinNonEmpty(t.DueDate, t.DueTime); due != "" {
		fmt.Fprintf(&b, msgTaskDue, due)
	}
	if t.ReminderEnabled {
		fmt.Fprintf(&b, msgTaskReminder, joinNonEmpty(t.ReminderDate, t.ReminderTime))
	}
	if t.Category != "" {
		fmt.Fprintf(&b, msgTaskCategory, t.Category)
	}
	if t.AssignedBy != nil {
		fmt.Fprintf(&b, msgTaskAssigned, t.AssignedBy.Name)
	}
	return b.String()
}

func toPerson(u model.User) *taskparser.Person {
	return &taskparser.Person{ID: u.ID, Name: u.Name, Role: string(u.Role)}
}

func call(ctx context.Context, fn func(context.Context)) {
	if fn != nil {
		fn(ctx)
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func joinNonEmpty(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
