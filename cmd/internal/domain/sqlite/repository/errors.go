package repository

import "errors"

// ErrNoteNotFound is returned by writes that target a note which does not exist.
var ErrNoteNotFound = errors.New("note not found")
