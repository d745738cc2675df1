package security

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
)

// Magic byte signatures for allowed file types
// Maps lowercase extension to possible magic byte prefixes
var magicBytes = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".pdf":  {{0x25, 0x50, 0x44, 0x46}}, // %PDF
}

// Allowed upload extensions (strict whitelist)
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// ValidateUpload checks the extension whitelist and verifies the file content
// actually matches the claimed extension. Runs before any storage or model call.
func ValidateUpload(filename string, data []byte) error {
	if err := ValidateFileExtension(filename); err != nil {
		return err
	}

	if len(data) == 0 {
		return errors.New("file is empty")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !validateMagicBytes(ext, data) {
		return errors.New("file content does not match extension")
	}

	return nil
}

// ValidateFileExtension checks only the extension (for quick pre-validation)
func ValidateFileExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return errors.New("file has no extension")
	}
	if !allowedExtensions[ext] {
		return errors.New("file extension not allowed: " + ext + " (allowed: " + strings.Join(GetAllowedExtensions(), ", ") + ")")
	}
	return nil
}

// IsImageExtension reports whether the extension is a raster image type.
func IsImageExtension(ext string) bool {
	ext = strings.ToLower(ext)
	return ext == ".png" || ext == ".jpg" || ext == ".jpeg"
}

// GetAllowedExtensions returns the whitelist for error messages
func GetAllowedExtensions() []string {
	return []string{".pdf", ".png", ".jpg", ".jpeg"}
}

func validateMagicBytes(ext string, data []byte) bool {
	if len(data) < 4 {
		return false // File too small to validate
	}

	signatures, ok := magicBytes[ext]
	if !ok {
		return false
	}

	for _, sig := range signatures {
		if len(data) >= len(sig) && bytes.HasPrefix(data, sig) {
			return true
		}
	}

	return false
}
