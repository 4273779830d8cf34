package response

const (
	MessageSuccess = "Success"

	// ErrorCodeBadRequest is reported for 400s; other failures carry their HTTP status.
	ErrorCodeBadRequest = 1
)
