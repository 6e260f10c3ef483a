package services

import "errors"

// error หลักของระบบ ใช้คู่กับ errors.Is ใน controller
var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("not found")
	ErrInvalidStatus = errors.New("invalid status")
)
