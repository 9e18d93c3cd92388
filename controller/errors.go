package controller

import "errors"

// ErrNoTarget is returned by Bind and Effect when the imperative strategy
// is selected but no target surface is resolvable at bind time.
var ErrNoTarget = errors.New("controller: no target surface resolvable at bind time")
