package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEcodeExists      = errors.New("employee code already exists")
)
