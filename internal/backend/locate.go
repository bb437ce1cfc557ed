package backend

import (
	"os"
	"path/filepath"
	"runtime"
)

// LibraryName is the base name of the native library without platform
// prefix or extension.
const LibraryName = "rlib"

// LibraryFilename returns the shared library file name used on goos.
func LibraryFilename(goos string) string {
	switch goos {
	case "darwin":
		return "lib" + LibraryName + ".dylib"
	case "windows":
		return LibraryName + ".dll"
	default:
		return "lib" + LibraryName + ".so"
	}
}

// CandidatePaths joins every directory in dirs with the platform library
// filename, keeping the order of dirs. Empty entries are skipped.
func CandidatePaths(dirs []string) []string {
	name := LibraryFilename(runtime.GOOS)
	paths := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	return paths
}

// Locate returns the first path in paths that names a readable regular file.
func Locate(paths []string) (string, error) {
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if readable(p) {
			return p, nil
		}
	}
	return "", &NotFoundError{Filename: LibraryFilename(runtime.GOOS), Tried: paths}
}
