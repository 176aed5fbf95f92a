package driven

import "context"

// PermissionRequester asks the platform for permission to write to storage.
type PermissionRequester interface {
	// RequestStoragePermission prompts for a grant and reports the answer.
	// An error means the request itself could not be made.
	RequestStoragePermission(ctx context.Context) (bool, error)
}
