package ai

import (
	"errors"
	"fmt"
)

// Precondition causes, matched with errors.Is
var (
	ErrMissingCredential = errors.New("credential not configured")
	ErrEmptyText         = errors.New("empty text")
	ErrEmptyAudio        = errors.New("empty audio")
)

// PreconditionError is raised before any external call is made
type PreconditionError struct {
	Reason string
	Err    error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition failed: %s: %v", e.Reason, e.Err)
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

func missingCredential(service string) error {
	return &PreconditionError{Reason: service, Err: ErrMissingCredential}
}

func emptyText(field string) error {
	return &PreconditionError{Reason: field, Err: ErrEmptyText}
}

// UpstreamError reports a failed call to an external service during a stage.
// Transcription and English summarization treat it as terminal; the other stages
// return it next to their documented default value.
type UpstreamError struct {
	Stage string
	Err   error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("stage %s: upstream call failed: %v", e.Stage, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsDegraded reports whether err only signals that a stage fell back to its default
func IsDegraded(err error) bool {
	var up *UpstreamError
	return errors.As(err, &up)
}
