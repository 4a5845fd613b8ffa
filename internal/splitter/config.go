package splitter

import (
	"filepart/pkg/config"
)

const (
	defaultPartDir      = "output"
	defaultDirThreshold = 10
)

type Config struct {
	// PartDirName is the folder created under the working directory when a
	// split produces more than DirThreshold parts.
	PartDirName  string
	DirThreshold int64
}

func NewConfig() *Config {
	return &Config{
		PartDirName:  config.GetEnvString("FILEPART_PART_DIR", defaultPartDir),
		DirThreshold: config.GetEnvInt64("FILEPART_DIR_THRESHOLD", defaultDirThreshold),
	}
}
