package domain

import (
	"fmt"
	"path/filepath"
)

// PlatformOS identifies the device family the documents are stored for.
type PlatformOS string

// Supported platforms.
const (
	// PlatformIOS stores documents in the app's Documents folder.
	PlatformIOS PlatformOS = "ios"

	// PlatformAndroid stores documents in app-specific storage.
	PlatformAndroid PlatformOS = "android"

	// PlatformDesktop stores documents directly under the storage root.
	PlatformDesktop PlatformOS = "desktop"
)

// ScopedStorageAPILevel is the first Android API level where writing to
// app-specific storage needs no runtime grant.
const ScopedStorageAPILevel = 33

// IsValid returns true if the platform is recognised.
func (o PlatformOS) IsValid() bool {
	switch o {
	case PlatformIOS, PlatformAndroid, PlatformDesktop:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (o PlatformOS) String() string {
	return string(o)
}

// Platform describes the storage rules of the running platform.
type Platform struct {
	// OS is the platform family.
	OS PlatformOS

	// APILevel is the Android API level. Ignored elsewhere.
	APILevel int
}

// RequiresStoragePermission returns true when a runtime grant must be
// obtained before writing documents.
func (p Platform) RequiresStoragePermission() bool {
	return p.OS == PlatformAndroid && p.APILevel < ScopedStorageAPILevel
}

// DocumentsDir returns the canonical documents directory under root.
func (p Platform) DocumentsDir(root string) string {
	switch p.OS {
	case PlatformIOS:
		return filepath.Join(root, "Documents")
	case PlatformAndroid:
		return filepath.Join(root, "files")
	default:
		return root
	}
}

// LocationMessage describes where a saved document can be found.
func (p Platform) LocationMessage(filePath string) string {
	switch p.OS {
	case PlatformIOS:
		return "Payslip saved to Documents folder.\n\n" +
			"You can access it via Files app > On My iPhone > PayslipsApp"
	case PlatformAndroid:
		return fmt.Sprintf("Payslip saved to app storage.\n\nPath: %s", filePath)
	default:
		return fmt.Sprintf("Payslip saved to %s", filePath)
	}
}

// String returns a short description, e.g. "android (API 30)".
func (p Platform) String() string {
	if p.OS == PlatformAndroid {
		return fmt.Sprintf("%s (API %d)", p.OS, p.APILevel)
	}
	return p.OS.String()
}
