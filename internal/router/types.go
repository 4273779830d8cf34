package router

import (
	"context"

	"clinic-assistant/internal/model"
	"clinic-assistant/pkg/taskparser"
)

// Intent names the branch that produced a reply.
type Intent string

const (
	IntentCreateTask     Intent = "create_task"
	IntentCreateTaskFail Intent = "create_task_failed"
	IntentViewTasks      Intent = "view_tasks"
	IntentStats          Intent = "stats"
	IntentCustomers      Intent = "customers"
	IntentEcho           Intent = "echo"

	IntentReceptionistIntake      Intent = "receptionist.intake"
	IntentReceptionistRecords     Intent = "receptionist.records"
	IntentReceptionistSearch      Intent = "receptionist.search"
	IntentReceptionistReturn      Intent = "receptionist.return"
	IntentReceptionistAppointment Intent = "receptionist.appointment"
	IntentReceptionistTicket      Intent = "receptionist.ticket"
	IntentReceptionistFallback    Intent = "receptionist.fallback"

	IntentDoctorQueue        Intent = "doctor.queue"
	IntentDoctorHistory      Intent = "doctor.history"
	IntentDoctorDiagnosis    Intent = "doctor.diagnosis"
	IntentDoctorPrescription Intent = "doctor.prescription"
	IntentDoctorOrder        Intent = "doctor.order"
	IntentDoctorFallback     Intent = "doctor.fallback"

	IntentTechnicianResults   Intent = "technician.results"
	IntentTechnicianSamples   Intent = "technician.samples"
	IntentTechnicianEquipment Intent = "technician.equipment"
	IntentTechnicianProgress  Intent = "technician.progress"
	IntentTechnicianCompleted Intent = "technician.completed"
	IntentTechnicianFallback  Intent = "technician.fallback"

	IntentAdminLogs     Intent = "admin.logs"
	IntentAdminOverview Intent = "admin.overview"
	IntentAdminUsers    Intent = "admin.users"
	IntentAdminBackup   Intent = "admin.backup"
	IntentAdminSettings Intent = "admin.settings"
	IntentAdminFallback Intent = "admin.fallback"

	IntentPatientResults     Intent = "patient.results"
	IntentPatientAppointment Intent = "patient.appointment"
	IntentPatientRecords     Intent = "patient.records"
	IntentPatientContact     Intent = "patient.contact"
	IntentPatientConsult     Intent = "patient.consult"
	IntentPatientFallback    Intent = "patient.fallback"
)

// Callbacks are side effects the caller wants triggered by a reply. Any of
// them may be nil.
type Callbacks struct {
	OnNewRecord   func(ctx context.Context)
	OnViewRecords func(ctx context.Context)
	OnViewTasks   func(ctx context.Context)
	// OnCreateTask persists a parsed task. A returned error turns the
	// confirmation into an apology.
	OnCreateTask func(ctx context.Context, task taskparser.ParsedTask) error
}

// Input is everything the router needs to answer one message.
type Input struct {
	Text        string
	Role        model.Role
	CurrentUser *model.User
	AssignedBy  *model.User
	Stats       model.Stats
	Callbacks   Callbacks
}

// Output is the assistant reply.
type Output struct {
	Content     string
	Suggestions []string
	TaskCreated bool
	Task        *taskparser.ParsedTask
	Intent      Intent
}
