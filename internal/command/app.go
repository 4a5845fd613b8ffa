package command

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli"

	"filepart/internal/joiner"
	"filepart/internal/splitter"
	"filepart/pkg/logger"
)

const (
	defaultSuffix    = "_part"
	defaultExtension = ".bin"
	minByteLimit     = 1000
)

var (
	errUsage = errors.New("invalid usage")
	errSize  = errors.New("invalid size limit")
)

// NewApp builds the CLI application. Exactly one of -split and -unsplit
// selects the mode; everything, usage text included, is printed to stdout.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "filepart"
	app.Usage = "split a file into fixed-size parts and join parts back together"
	app.HideVersion = true
	app.Writer = os.Stdout
	app.ErrWriter = os.Stdout
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "split",
			Usage: "the opposite of \"-unsplit\"; required to split a file",
		},
		cli.BoolFlag{
			Name:  "unsplit",
			Usage: "the opposite of \"-split\"; required to join files",
		},
		cli.StringFlag{
			Name:  "filename",
			Usage: "required if splitting; the file to be split. When unsplitting, names the output file",
		},
		cli.StringFlag{
			Name:  "foldername",
			Usage: "used when unsplitting; the folder whose contents will be joined (defaults to the working directory)",
		},
		cli.Int64Flag{
			Name:  "size",
			Usage: "required if splitting; the target size (in bytes) of each part",
		},
		cli.StringFlag{
			Name:  "suffix",
			Usage: "suffix of each part file; the default is \"_part\"[number], e.g. MyFile_part1.bin",
		},
		cli.StringFlag{
			Name:  "extension",
			Usage: "whether part files get an extension, and what it is; present but empty means \".bin\". Always ignored when unsplitting",
		},
	}
	app.Action = run
	return app
}

func run(c *cli.Context) error {
	doSplit := c.Bool("split")
	doUnsplit := c.Bool("unsplit")
	if doSplit == doUnsplit {
		fmt.Fprintln(c.App.Writer, "Need to use exactly one usage argument.")
		cli.ShowAppHelp(c)
		return errUsage
	}

	lg := logger.GetLogger().With(slog.String("run_id", uuid.New().String()))

	suffix := c.String("suffix")
	if suffix == "" {
		suffix = defaultSuffix
	}

	if doUnsplit {
		folderName := c.String("foldername")
		outputFilename := c.String("filename")
		if outputFilename == "" {
			outputFilename = folderName + " - unsplit"
		}
		return joiner.New(lg).Unsplit(folderName, suffix, outputFilename)
	}

	filename := c.String("filename")
	if filename == "" {
		fmt.Fprintln(c.App.Writer, "Need to specify filename.")
		cli.ShowAppHelp(c)
		return errUsage
	}
	if !c.IsSet("size") {
		fmt.Fprintln(c.App.Writer, "Need to specify size limit.")
		cli.ShowAppHelp(c)
		return errUsage
	}

	size := c.Int64("size")
	if size < 1 {
		fmt.Fprintf(c.App.Writer, "Size cannot be less than 1 byte. Given size was %d byte(s).\n", size)
		return errSize
	}
	if size < minByteLimit {
		fmt.Fprintln(c.App.Writer, "Splitting a file into sizes less than 1,000 bytes is impractical. The file was not split.")
		return errSize
	}

	extension := c.String("extension")
	if extension == "" && c.IsSet("extension") {
		extension = defaultExtension
	}

	return splitter.New(splitter.NewConfig(), lg).Split(filename, size, suffix, extension)
}
