package task

import "errors"

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrNotAssignee       = errors.New("task is assigned to another user")
	ErrTaskNotSubmitted  = errors.New("task has not been submitted")
	ErrTaskAlreadyClosed = errors.New("task is already completed")
)
