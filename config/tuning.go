package config

import (
	"fmt"
	"time"

	"github.com/dshills/gesturekit/event"
	"github.com/dshills/gesturekit/recognizer"
)

// Tuning carries the per-gesture thresholds and timeouts used to
// construct the built-in recognizers.
type Tuning struct {
	Drag   recognizer.DragConfig
	Click  recognizer.ClickConfig
	Wheel  recognizer.WheelConfig
	Scroll recognizer.ScrollConfig
	Move   recognizer.MoveConfig
	Pinch  recognizer.PinchConfig
}

// DefaultTuning returns the built-in recognizer defaults.
func DefaultTuning() Tuning {
	return Tuning{
		Drag:   recognizer.DefaultDragConfig(),
		Click:  recognizer.DefaultClickConfig(),
		Wheel:  recognizer.DefaultWheelConfig(),
		Scroll: recognizer.DefaultScrollConfig(),
		Move:   recognizer.DefaultMoveConfig(),
		Pinch:  recognizer.DefaultPinchConfig(),
	}
}

// Apply overlays profile values onto the tuning. Unknown keys are
// ignored so profiles remain forward compatible; values of the wrong
// type return an error naming the key.
func (t *Tuning) Apply(profile map[string]any) error {
	if profile == nil {
		return nil
	}

	type field struct {
		path []string
		set  func(any) error
	}

	fields := []field{
		{[]string{"drag", "threshold"}, func(v any) error { return setInt(&t.Drag.Threshold, v) }},
		{[]string{"drag", "button"}, func(v any) error { return setButton(&t.Drag.Button, v) }},
		{[]string{"click", "interval"}, func(v any) error { return setDuration(&t.Click.Interval, v) }},
		{[]string{"click", "distance"}, func(v any) error { return setInt(&t.Click.Distance, v) }},
		{[]string{"wheel", "end_delay"}, func(v any) error { return setDuration(&t.Wheel.EndDelay, v) }},
		{[]string{"scroll", "end_delay"}, func(v any) error { return setDuration(&t.Scroll.EndDelay, v) }},
		{[]string{"move", "end_delay"}, func(v any) error { return setDuration(&t.Move.EndDelay, v) }},
		{[]string{"pinch", "step"}, func(v any) error { return setFloat(&t.Pinch.Step, v) }},
		{[]string{"pinch", "min"}, func(v any) error { return setFloat(&t.Pinch.Min, v) }},
		{[]string{"pinch", "max"}, func(v any) error { return setFloat(&t.Pinch.Max, v) }},
		{[]string{"pinch", "end_delay"}, func(v any) error { return setDuration(&t.Pinch.EndDelay, v) }},
	}

	for _, f := range fields {
		v, ok := lookup(profile, f.path...)
		if !ok {
			continue
		}
		if err := f.set(v); err != nil {
			return fmt.Errorf("tuning %s: %w", joinPath(f.path), err)
		}
	}
	return nil
}

func joinPath(path []string) string {
	out := path[0]
	for _, p := range path[1:] {
		out += "." + p
	}
	return out
}

// lookup walks nested string-keyed maps.
func lookup(m map[string]any, path ...string) (any, bool) {
	var cur any = m
	for _, key := range path {
		mm, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = mm[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func setInt(dst *int, v any) error {
	switch n := v.(type) {
	case int:
		*dst = n
	case int64:
		*dst = int(n)
	case float64:
		*dst = int(n)
	default:
		return fmt.Errorf("expected integer, got %T", v)
	}
	return nil
}

func setFloat(dst *float64, v any) error {
	switch n := v.(type) {
	case float64:
		*dst = n
	case int:
		*dst = float64(n)
	case int64:
		*dst = float64(n)
	default:
		return fmt.Errorf("expected number, got %T", v)
	}
	return nil
}

// setDuration accepts a duration string ("400ms") or a number of
// milliseconds.
func setDuration(dst *time.Duration, v any) error {
	switch d := v.(type) {
	case time.Duration:
		*dst = d
	case string:
		parsed, err := time.ParseDuration(d)
		if err != nil {
			return err
		}
		*dst = parsed
	case int:
		*dst = time.Duration(d) * time.Millisecond
	case int64:
		*dst = time.Duration(d) * time.Millisecond
	case float64:
		*dst = time.Duration(d * float64(time.Millisecond))
	default:
		return fmt.Errorf("expected duration, got %T", v)
	}
	return nil
}

func setButton(dst *event.Buttons, v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("expected button name, got %T", v)
	}
	switch s {
	case "primary", "left":
		*dst = event.ButtonPrimary
	case "secondary", "right":
		*dst = event.ButtonSecondary
	case "middle":
		*dst = event.ButtonMiddle
	case "any":
		*dst = 0
	default:
		return fmt.Errorf("unknown button %q", s)
	}
	return nil
}
