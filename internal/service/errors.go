package service

import "errors"

// ErrStore marks failures of the day record store or its lock, as opposed
// to validation rejections. Match with errors.Is.
var ErrStore = errors.New("time sheet store unavailable")
