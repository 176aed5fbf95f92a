package domain

// FSInfo reports capacity of the filesystem holding the documents directory.
type FSInfo struct {
	FreeSpace  int64
	TotalSpace int64
}

// StorageEventType identifies what happened to a stored document.
type StorageEventType int

// Storage event types.
const (
	// StorageEventWritten means a document was created or rewritten.
	StorageEventWritten StorageEventType = iota

	// StorageEventRemoved means a document was deleted or moved away.
	StorageEventRemoved
)

// String returns the string representation.
func (t StorageEventType) String() string {
	switch t {
	case StorageEventWritten:
		return "written"
	case StorageEventRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// StorageEvent reports a change to a file in the documents directory.
type StorageEvent struct {
	Type StorageEventType

	// Name is the base file name within the documents directory.
	Name string

	// Path is the full path of the file.
	Path string
}
