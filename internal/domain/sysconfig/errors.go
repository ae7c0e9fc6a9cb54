package sysconfig

import "errors"

var (
	ErrConfigNotFound    = errors.New("configuration entry not found")
	ErrClaveExists       = errors.New("a configuration entry with this clave already exists")
	ErrValueTypeMismatch = errors.New("valor does not match the declared tipo_dato")
)
