package joiner

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type Joiner struct {
	Logger *slog.Logger
}

func New(logger *slog.Logger) *Joiner {
	return &Joiner{
		Logger: logger,
	}
}

// Unsplit concatenates every regular file in folderName whose name contains
// suffix, in lexicographic path order, into outputFilename. The output file
// is created (and truncated) before the folder is checked, so a bad output
// path is reported ahead of a bad folder. An empty folderName means the
// current working directory.
func (j *Joiner) Unsplit(folderName, suffix, outputFilename string) error {
	folder := folderName
	if folder == "" {
		wd, err := os.Getwd()
		if err != nil {
			j.Logger.Error("Failed to resolve working directory", slog.Any("error", err))
			return fmt.Errorf("failed to resolve working directory: %w", err)
		}
		folder = wd
	}

	out, err := os.Create(outputFilename)
	if err != nil {
		j.Logger.Error("Failed to create or open file", slog.String("file", outputFilename), slog.Any("error", err))
		return fmt.Errorf("failed to create or open file %s", outputFilename)
	}
	defer out.Close()

	info, err := os.Stat(folder)
	if err != nil || !info.IsDir() {
		j.Logger.Error("Folder does not exist", slog.String("folder", folder))
		return fmt.Errorf("folder %s does not exist", folder)
	}

	paths, err := j.matchingFiles(folder, suffix, outputFilename)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		j.Logger.Error("No files found", slog.String("suffix", suffix), slog.String("folder", folder))
		return fmt.Errorf("no files found with suffix %s in folder %s", suffix, folder)
	}

	sort.Strings(paths)
	j.Logger.Info("Combining files", slog.String("folder", folder), slog.String("suffix", suffix), slog.Int("files", len(paths)))

	for _, path := range paths {
		if err := j.appendFile(out, path); err != nil {
			return err
		}
	}

	if err := out.Close(); err != nil {
		j.Logger.Error("Failed to close output file", slog.String("file", outputFilename), slog.Any("error", err))
		return fmt.Errorf("failed to close output file %s: %w", outputFilename, err)
	}

	j.Logger.Info("Successfully combined files", slog.String("output", outputFilename))
	return nil
}

// matchingFiles returns the direct children of folder that are regular files
// and contain suffix anywhere in their name. The output file itself is
// skipped: it was just truncated, and feeding it back into the join could
// only corrupt the result.
func (j *Joiner) matchingFiles(folder, suffix, outputFilename string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		j.Logger.Error("Failed to read folder", slog.String("folder", folder), slog.Any("error", err))
		return nil, fmt.Errorf("failed to read folder %s: %w", folder, err)
	}

	outputPath, err := filepath.Abs(outputFilename)
	if err != nil {
		outputPath = filepath.Clean(outputFilename)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !strings.Contains(entry.Name(), suffix) {
			continue
		}
		path := filepath.Join(folder, entry.Name())
		if abs, err := filepath.Abs(path); err == nil && abs == outputPath {
			j.Logger.Warn("Skipping output file matched by suffix", slog.String("file", path))
			continue
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (j *Joiner) appendFile(dst io.Writer, path string) error {
	in, err := os.Open(path)
	if err != nil {
		j.Logger.Error("Failed to open file", slog.String("file", path), slog.Any("error", err))
		return fmt.Errorf("failed to open file %s", path)
	}
	defer in.Close()

	if _, err := io.Copy(dst, in); err != nil {
		j.Logger.Error("Failed to copy file", slog.String("file", path), slog.Any("error", err))
		return fmt.Errorf("failed to copy file %s: %w", path, err)
	}
	return nil
}
