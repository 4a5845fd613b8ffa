package splitter

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

type Splitter struct {
	Config *Config
	Logger *slog.Logger
}

func New(config *Config, logger *slog.Logger) *Splitter {
	return &Splitter{
		Config: config,
		Logger: logger,
	}
}

// Split cuts the named file into parts of at most byteLimit bytes each and
// writes them relative to the current working directory. The caller is
// expected to have validated byteLimit. Part files already written are left
// on disk when a later part fails.
func (s *Splitter) Split(filename string, byteLimit int64, suffix, extension string) error {
	src, err := os.Open(filename)
	if err != nil {
		s.Logger.Error("File does not exist", slog.String("file", filename), slog.Any("error", err))
		return fmt.Errorf("file %s does not exist", filename)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		s.Logger.Error("Failed to stat file", slog.String("file", filename), slog.Any("error", err))
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	totalSize := info.Size()

	parts := Parts(totalSize, byteLimit)
	s.Logger.Info("Splitting file", slog.String("file", filename), slog.Int64("file_size", totalSize), slog.Int64("byte_limit", byteLimit), slog.Int("parts", len(parts)))

	partDir := ""
	if int64(len(parts)) > s.Config.DirThreshold {
		partDir = s.Config.PartDirName
		if err := ensureDir(partDir); err != nil {
			s.Logger.Error("Failed to create directory", slog.String("directory", partDir), slog.Any("error", err))
			return err
		}
	}

	base := baseName(filename)
	ext := normalizeExtension(extension)

	for _, part := range parts {
		name := PartName(partDir, base, suffix, part.Index, ext)
		if err := s.writePart(name, src, part.Size); err != nil {
			return err
		}
		s.Logger.Debug("Wrote part", slog.String("file", name), slog.Int64("part", part.Index), slog.Int64("size", part.Size))
	}

	s.Logger.Info("Successfully split file", slog.String("file", filename))
	return nil
}

// writePart copies the next size bytes of src into a freshly created file.
func (s *Splitter) writePart(name string, src io.Reader, size int64) error {
	dst, err := os.Create(name)
	if err != nil {
		s.Logger.Error("Failed to create file", slog.String("file", name), slog.Any("error", err))
		return fmt.Errorf("failed to create file %s", name)
	}

	if _, err := io.Copy(dst, io.LimitReader(src, size)); err != nil {
		dst.Close()
		s.Logger.Error("Failed to write part", slog.String("file", name), slog.Any("error", err))
		return fmt.Errorf("failed to write part %s: %w", name, err)
	}

	if err := dst.Close(); err != nil {
		s.Logger.Error("Failed to close part", slog.String("file", name), slog.Any("error", err))
		return fmt.Errorf("failed to close part %s: %w", name, err)
	}
	return nil
}
