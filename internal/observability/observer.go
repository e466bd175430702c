// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package observability provides lightweight operational logging for the
// redaction pipeline. Detector failures, skipped tags and model fallbacks
// are recorded here; they never abort field processing.
package observability

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

type Level int

const (
	LevelOff     Level = 0
	LevelMetrics Level = 1
	LevelDebug   Level = 2
)

// StandardObserver writes structured operation records for all components.
type StandardObserver struct {
	level  Level
	writer io.Writer
}

// NewStandardObserver creates an observer writing to w. A nil writer
// silences all output regardless of level.
func NewStandardObserver(level Level, w io.Writer) *StandardObserver {
	return &StandardObserver{level: level, writer: w}
}

// OperationData is one structured operation record.
type OperationData struct {
	Component  string         `json:"component"`
	Operation  string         `json:"operation"`
	Field      string         `json:"field,omitempty"`
	DurationMs int64          `json:"duration_ms,omitempty"`
	Success    bool           `json:"success"`
	Error      string         `json:"error,omitempty"`
	Findings   int            `json:"findings,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// StartTiming returns a completion function that records the operation's
// duration and outcome when called.
func (o *StandardObserver) StartTiming(component, operation, field string) func(success bool, findings int) {
	start := time.Now()
	return func(success bool, findings int) {
		o.LogOperation(OperationData{
			Component:  component,
			Operation:  operation,
			Field:      field,
			DurationMs: time.Since(start).Milliseconds(),
			Success:    success,
			Findings:   findings,
		})
	}
}

// LogOperation writes an operation record when debug output is enabled.
func (o *StandardObserver) LogOperation(data OperationData) {
	if o == nil || o.level < LevelDebug || o.writer == nil {
		return
	}
	json.NewEncoder(o.writer).Encode(data)
}

// Warnf writes a plain warning line when metrics output is enabled. Used
// for recoverable conditions the operator should still see, such as a
// malformed user tag.
func (o *StandardObserver) Warnf(format string, args ...any) {
	if o == nil || o.level < LevelMetrics || o.writer == nil {
		return
	}
	fmt.Fprintf(o.writer, "warning: "+format+"\n", args...)
}
