package splitter

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSplitter() *Splitter {
	config := &Config{PartDirName: defaultPartDir, DirThreshold: defaultDirThreshold}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	return New(config, logger)
}

// chdir switches the working directory for the duration of the test; parts
// are always written relative to it.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
}

func writeSource(t *testing.T, path string, size int) []byte {
	t.Helper()
	content := make([]byte, size)
	for i := range content {
		content[i] = byte(i % 251)
	}
	require.NoError(t, os.WriteFile(path, content, 0644))
	return content
}

func TestSplitRoundTrip(t *testing.T) {
	chdir(t, t.TempDir())
	content := writeSource(t, "data.txt", 2500)

	s := testSplitter()
	require.NoError(t, s.Split("data.txt", 1000, "_part", ""))

	var joined []byte
	for i := 0; i < 3; i++ {
		part, err := os.ReadFile(PartName("", "data", "_part", int64(i), ""))
		require.NoError(t, err)
		joined = append(joined, part...)
	}
	assert.Equal(t, content, joined)
}

func TestSplitPartSizes(t *testing.T) {
	chdir(t, t.TempDir())
	writeSource(t, "data.txt", 2500)

	s := testSplitter()
	require.NoError(t, s.Split("data.txt", 1000, "_part", ""))

	for i, expected := range []int64{1000, 1000, 500} {
		info, err := os.Stat(PartName("", "data", "_part", int64(i), ""))
		require.NoError(t, err)
		assert.Equal(t, expected, info.Size())
	}

	_, err := os.Stat("data_part3")
	assert.True(t, os.IsNotExist(err))
}

func TestSplitTenPartsStayInWorkingDirectory(t *testing.T) {
	chdir(t, t.TempDir())
	writeSource(t, "data.txt", 10000)

	s := testSplitter()
	require.NoError(t, s.Split("data.txt", 1000, "_part", ""))

	for i := int64(0); i < 10; i++ {
		_, err := os.Stat(PartName("", "data", "_part", i, ""))
		require.NoError(t, err)
	}
	_, err := os.Stat(defaultPartDir)
	assert.True(t, os.IsNotExist(err))
}

func TestSplitElevenPartsUsePartDir(t *testing.T) {
	chdir(t, t.TempDir())
	content := writeSource(t, "data.txt", 10500)

	s := testSplitter()
	require.NoError(t, s.Split("data.txt", 1000, "_part", ""))

	info, err := os.Stat(defaultPartDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	var total int64
	for i := int64(0); i < 11; i++ {
		info, err := os.Stat(PartName(defaultPartDir, "data", "_part", i, ""))
		require.NoError(t, err)
		total += info.Size()
	}
	assert.Equal(t, int64(len(content)), total)
}

func TestSplitEmptyFileWritesNothing(t *testing.T) {
	chdir(t, t.TempDir())
	writeSource(t, "data.txt", 0)

	s := testSplitter()
	require.NoError(t, s.Split("data.txt", 1000, "_part", ""))

	entries, err := os.ReadDir(".")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "data.txt", entries[0].Name())
}

func TestSplitMissingFile(t *testing.T) {
	chdir(t, t.TempDir())

	s := testSplitter()
	err := s.Split("missing.txt", 1000, "_part", "")
	require.Error(t, err)
	assert.Equal(t, "file missing.txt does not exist", err.Error())
}

func TestSplitExtensions(t *testing.T) {
	chdir(t, t.TempDir())
	writeSource(t, "data.txt", 1500)

	s := testSplitter()

	require.NoError(t, s.Split("data.txt", 1000, "_part", "dat"))
	_, err := os.Stat("data_part0.dat")
	assert.NoError(t, err)

	require.NoError(t, s.Split("data.txt", 1000, "_part", ".raw"))
	_, err = os.Stat("data_part1.raw")
	assert.NoError(t, err)

	require.NoError(t, s.Split("data.txt", 1000, "_part", ""))
	_, err = os.Stat("data_part0")
	assert.NoError(t, err)
}

func TestSplitWritesPartsToWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), os.ModePerm))
	chdir(t, dir)
	writeSource(t, filepath.Join("src", "data.txt"), 1500)

	s := testSplitter()
	require.NoError(t, s.Split(filepath.Join("src", "data.txt"), 1000, "_part", ""))

	// Parts land in the working directory, not next to the source.
	_, err := os.Stat("data_part0")
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join("src", "data_part0"))
	assert.True(t, os.IsNotExist(err))
}

func TestSplitCustomSuffix(t *testing.T) {
	chdir(t, t.TempDir())
	writeSource(t, "data.txt", 1200)

	s := testSplitter()
	require.NoError(t, s.Split("data.txt", 1000, ".piece", ""))

	_, err := os.Stat("data.piece0")
	assert.NoError(t, err)
	_, err = os.Stat("data.piece1")
	assert.NoError(t, err)
}
