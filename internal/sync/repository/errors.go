package repository

import "errors"

var (
	ErrListNotFound     = errors.New("task list not found")
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrFailedToList     = errors.New("failed to list records")
	ErrFailedToInsert   = errors.New("failed to insert record")
	ErrFailedToDelete   = errors.New("failed to delete record")
)
