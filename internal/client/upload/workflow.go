// Package upload implements the image-upload workflow: local file selection
// with a size pre-check, caption entry, and multipart submission with
// progress and error state the parent surface can observe.
package upload

import (
	"context"
	"io"

	"github.com/outstagram/outstagram-cli/internal/client/api"
)

// MaxFileSize is the client-side upload limit in bytes. A file of exactly
// this size is still accepted.
const MaxFileSize = 9_000_000

const (
	sizeLimitError   = "Selected image exceeds size limit (9MB)"
	readFileError    = "Unable to read the selected file"
	uploadGenericErr = "Unknown error occurred while uploading; try again later"
)

// State is the workflow state.
//
//	Empty → FileSelected → Submitting → {Done | Error}
//
// Error keeps the selected file so the user can retry; Reset (the surface
// closing) returns any state to Empty.
type State int

const (
	StateEmpty State = iota
	StateFileSelected
	StateSubmitting
	StateDone
	StateError
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateFileSelected:
		return "file-selected"
	case StateSubmitting:
		return "submitting"
	case StateDone:
		return "done"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// File is a selected local file. Open is called once per submission attempt
// so retries re-read from the start.
type File struct {
	Name string
	Size int64
	Open func() (io.ReadCloser, error)
}

// Workflow drives one upload surface. onClose, if set, is invoked with a
// success flag when a submission completes and the surface should close.
type Workflow struct {
	client  api.Client
	onClose func(ok bool)

	state        State
	file         *File
	caption      string
	errorMessage string
}

func NewWorkflow(client api.Client, onClose func(ok bool)) *Workflow {
	return &Workflow{client: client, onClose: onClose}
}

func (w *Workflow) State() State         { return w.state }
func (w *Workflow) ErrorMessage() string { return w.errorMessage }
func (w *Workflow) Caption() string      { return w.caption }
func (w *Workflow) Submitting() bool     { return w.state == StateSubmitting }

// FileName returns the selected file's name, or "" when nothing is selected.
func (w *Workflow) FileName() string {
	if w.file == nil {
		return ""
	}
	return w.file.Name
}

// Select runs the size pre-check and either accepts the file or stays Empty
// with the size-limit message. Selection is ignored mid-submission.
func (w *Workflow) Select(f File) {
	if w.state == StateSubmitting {
		return
	}
	if f.Size > MaxFileSize {
		w.file = nil
		w.state = StateEmpty
		w.errorMessage = sizeLimitError
		return
	}
	w.errorMessage = ""
	w.file = &f
	w.state = StateFileSelected
}

func (w *Workflow) SetCaption(v string) {
	if w.state == StateSubmitting {
		return
	}
	w.caption = v
}

// Submit sends the selected file and caption. Concurrent submits are ignored
// at entry; a failed submission keeps the file selected and records the
// server's message (or the generic one) for display. Success invokes onClose
// with ok=true and resets the workflow.
func (w *Workflow) Submit(ctx context.Context) {
	if w.state != StateFileSelected && w.state != StateError {
		return
	}

	file := w.file
	rc, err := file.Open()
	if err != nil {
		w.errorMessage = readFileError
		w.state = StateError
		return
	}
	defer rc.Close()

	w.errorMessage = ""
	w.state = StateSubmitting

	if err := w.client.AddImage(ctx, file.Name, rc, w.caption); err != nil {
		w.errorMessage = api.Message(err, uploadGenericErr)
		w.state = StateError
		return
	}

	if w.onClose != nil {
		w.onClose(true)
	}
	w.reset()
	w.state = StateDone
}

// Reset returns the workflow to Empty, discarding the draft. Called when the
// surface closes or reopens.
func (w *Workflow) Reset() {
	w.reset()
	w.state = StateEmpty
}

func (w *Workflow) reset() {
	w.file = nil
	w.caption = ""
	w.errorMessage = ""
}
