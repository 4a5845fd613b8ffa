package splitter

import (
	"path/filepath"
	"strconv"
	"strings"
)

// PartName builds the path of one part file: {dir}/{base}{suffix}{index}{ext}.
// Indices are unpadded decimal, so names sort lexicographically rather than
// numerically once indices reach double digits.
func PartName(dir, base, suffix string, index int64, extension string) string {
	name := base + suffix + strconv.FormatInt(index, 10) + extension
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// baseName strips the directory and the final extension from a path.
// Dotfiles like ".config" keep their full name.
func baseName(path string) string {
	name := filepath.Base(path)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if base == "" {
		return name
	}
	return base
}

// normalizeExtension synthesizes a leading separator when the given
// extension carries no dot at all; "bin" becomes ".bin" while ".bin" and
// "tar.gz" pass through. Empty stays empty.
func normalizeExtension(extension string) string {
	if extension == "" || strings.Contains(extension, ".") {
		return extension
	}
	return "." + extension
}
