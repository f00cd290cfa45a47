package payroll

import "errors"

var ErrEmployeeNotFound = errors.New("employee not found")
