package model

import "errors"

var (
	ErrInput      = errors.New("input error")
	ErrOutput     = errors.New("output error")
	ErrNoSegments = errors.New("no subtitle segments found")
)
