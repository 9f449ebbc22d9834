package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"

	boshlog "github.com/cloudfoundry/bosh-saltedhash/logger"
	boshsys "github.com/cloudfoundry/bosh-saltedhash/system"
)

const mainLogTag = "main"

const (
	exitInvalid = 1
	exitError   = 2
)

type deps struct {
	fs     boshsys.FileSystem
	logger boshlog.Logger
	stdin  io.Reader
	stdout io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts Options

	level, err := boshlog.Levelify(logLevelFromArgs(args))
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitError
	}

	logger := boshlog.NewAsyncWriterLogger(level, stderr)
	defer logger.HandlePanic(mainLogTag)
	defer func() {
		_ = logger.Flush()
	}()

	d := deps{
		fs:     boshsys.NewOsFileSystem(logger),
		logger: logger,
		stdin:  stdin,
		stdout: stdout,
	}
	opts.Produce.deps = d
	opts.Validate.deps = d
	opts.Digest.deps = d

	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	_, err = parser.ParseArgs(args)
	if err == nil {
		return 0
	}

	var flagsErr *flags.Error
	if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
		fmt.Fprintln(stdout, err.Error())
		return 0
	}

	if errors.Is(err, errInvalidHash) {
		return exitInvalid
	}

	logger.Error(mainLogTag, "%s", err.Error())
	fmt.Fprintln(stderr, err.Error())
	return exitError
}

// logLevelFromArgs finds --log-level ahead of parsing so the logger exists
// while commands execute.
func logLevelFromArgs(args []string) string {
	for i, arg := range args {
		if arg == "--log-level" && i+1 < len(args) {
			return args[i+1]
		}
		if len(arg) > len("--log-level=") && arg[:len("--log-level=")] == "--log-level=" {
			return arg[len("--log-level="):]
		}
	}
	return "NONE"
}
