package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/outstagram/outstagram-cli/internal/client/upload"
)

// statFile is a test seam for os.Stat.
var statFile = os.Stat

// Upload prompts the user for an image path and a caption and runs the
// upload workflow. Files over the size limit are refused before any
// network traffic. Requires a logged-in session.
func (a *App) Upload(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Log in first.")
		return nil
	}

	path, err := getSimpleText(a.reader, "Enter image path", os.Stdout)
	if err != nil {
		return err
	}

	info, err := statFile(path)
	if err != nil {
		printlnFn(fmt.Sprintf("Cannot read file: %s", err.Error()))
		return nil
	}

	caption, err := getSimpleText(a.reader, "Enter caption", os.Stdout)
	if err != nil {
		return err
	}

	var done bool
	w := upload.NewWorkflow(a.api, func(ok bool) { done = ok })

	w.Select(upload.File{
		Name: filepath.Base(path),
		Size: info.Size(),
		Open: func() (io.ReadCloser, error) { return os.Open(path) },
	})
	if w.State() == upload.StateEmpty {
		if msg := w.ErrorMessage(); msg != "" {
			printlnFn(msg)
		}
		return nil
	}

	w.SetCaption(caption)
	w.Submit(ctx)

	if done {
		printlnFn("Image uploaded.")
		return nil
	}
	if msg := w.ErrorMessage(); msg != "" {
		printlnFn(msg)
	}
	return nil
}
