package filestorage

import "mime/multipart"

// FileStorage defines the interface for file storage operations.
type FileStorage interface {
	// SaveFileWithPath saves a file under the given subdirectory and
	// returns the accessible path it was stored at
	SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error)

	// DeleteFile removes a file from storage
	DeleteFile(filePath string) error
}
