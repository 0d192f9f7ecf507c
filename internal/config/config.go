// Package config resolves the application's file locations once at startup.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"photo-compare/internal/version"
)

// Fixed locations relative to the base directory.
const (
	InputFile  = "input/photo_backcheck.csv"
	OutputFile = "output/completed_review.csv"
)

const appTitle = "Enumerator/Backchecker Photo Comparator"

// Config holds everything the application needs to locate its files.
// It is built once and passed down explicitly.
type Config struct {
	// BaseDir is the directory containing the running executable. Relative
	// image paths in the input file are resolved against it.
	BaseDir    string
	InputPath  string
	OutputPath string

	Title string

	// FallbackScreen is the display size used to scale photos before the
	// window has been laid out.
	FallbackScreen Size
}

// Size is a width and height in device-independent pixels.
type Size struct {
	Width, Height float32
}

// ForBaseDir builds a Config rooted at dir.
func ForBaseDir(dir string) Config {
	return Config{
		BaseDir:        dir,
		InputPath:      filepath.Join(dir, filepath.FromSlash(InputFile)),
		OutputPath:     filepath.Join(dir, filepath.FromSlash(OutputFile)),
		Title:          fmt.Sprintf("%s %s", appTitle, version.Version),
		FallbackScreen: Size{Width: 1440, Height: 900},
	}
}

// Resolve builds a Config rooted at the directory of the current executable.
func Resolve() (Config, error) {
	execPath, err := os.Executable()
	if err != nil {
		return Config{}, fmt.Errorf("failed to locate executable: %w", err)
	}
	return FromExecutable(execPath)
}

// FromExecutable builds a Config rooted at the directory holding execPath,
// following symlinks so a linked launcher still finds its data files.
func FromExecutable(execPath string) (Config, error) {
	if realPath, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = realPath
	}
	abs, err := filepath.Abs(execPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to resolve executable path: %w", err)
	}
	return ForBaseDir(filepath.Dir(abs)), nil
}
