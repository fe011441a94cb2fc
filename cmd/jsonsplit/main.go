package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/alxarch/jsonsplit"
)

func main() {
	app := kingpin.New("jsonsplit", "Split a JSON array into newline delimited JSON.")
	var (
		flags      = DefaultConfig()
		configFile string
		inputFile  string
		set        = map[string]*bool{}
	)
	flag := func(name, help string) *kingpin.FlagClause {
		set[name] = new(bool)
		return app.Flag(name, help).IsSetByUser(set[name])
	}
	app.Flag("config", "YAML configuration file.").StringVar(&configFile)
	flag("compression", "Input compression.").Default(flags.Compression).EnumVar(&flags.Compression, compressions...)
	flag("buffer-size", "Size of input reads in bytes.").Default(fmt.Sprint(flags.BufferSize)).IntVar(&flags.BufferSize)
	flag("max-element-size", "Maximum element size in bytes (0 for unlimited).").Default("0").IntVar(&flags.MaxElementSize)
	flag("validate", "Check that every element is valid JSON.").BoolVar(&flags.Validate)
	flag("keep-going", "Log invalid input and continue.").BoolVar(&flags.KeepGoing)
	flag("log.level", "Log level (debug|info|warn|error).").Default(flags.LogLevel).StringVar(&flags.LogLevel)
	app.Arg("file", "Input file, stdin if omitted or -.").StringVar(&inputFile)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg := DefaultConfig()
	if configFile != "" {
		if err := LoadConfig(configFile, &cfg); err != nil {
			app.Fatalf("%s", err)
		}
	}
	// Flags set on the command line win over the config file
	if *set["compression"] {
		cfg.Compression = flags.Compression
	}
	if *set["buffer-size"] {
		cfg.BufferSize = flags.BufferSize
	}
	if *set["max-element-size"] {
		cfg.MaxElementSize = flags.MaxElementSize
	}
	if *set["validate"] {
		cfg.Validate = flags.Validate
	}
	if *set["keep-going"] {
		cfg.KeepGoing = flags.KeepGoing
	}
	if *set["log.level"] {
		cfg.LogLevel = flags.LogLevel
	}
	if err := cfg.Check(); err != nil {
		app.Fatalf("%s", err)
	}

	logger := cfg.Logger()
	in, err := openInput(inputFile, cfg.Compression, os.Stdin)
	if err != nil {
		level.Error(logger).Log("msg", "failed to open input", "file", inputFile, "err", err)
		os.Exit(1)
	}
	defer in.Close()

	st, err := run(cfg, in, os.Stdout, logger)
	if err != nil {
		level.Error(logger).Log("msg", "split failed", "elements", st.elements, "offset", st.bytes, "err", err)
		in.Close()
		os.Exit(1)
	}
	level.Info(logger).Log("msg", "split array", "elements", st.elements, "skipped", st.skipped, "bytes", st.bytes)
}

type stats struct {
	elements int
	skipped  int
	bytes    int64
}

// run splits the array read from r writing one element per line to w.
func run(cfg Config, r io.Reader, w io.Writer, logger log.Logger) (st stats, err error) {
	s := jsonsplit.NewReader(r,
		jsonsplit.BufferSize(cfg.BufferSize),
		jsonsplit.MaxElementSize(cfg.MaxElementSize),
	)
	out := bufio.NewWriter(w)
	lw := jsonsplit.NewLineWriter(out)
	defer func() {
		st.bytes = s.Offset()
		if e := out.Flush(); e != nil && err == nil {
			err = e
		}
	}()

	for span, err := range s.All() {
		if err != nil {
			if cfg.KeepGoing && jsonsplit.IsRecoverable(err) {
				level.Warn(logger).Log("msg", "invalid input", "err", err)
				continue
			}
			return st, err
		}
		if cfg.Validate {
			if err := jsonsplit.Validate(span); err != nil {
				err = &jsonsplit.DecodeError{Index: st.elements + st.skipped, Err: err}
				if !cfg.KeepGoing {
					return st, err
				}
				level.Warn(logger).Log("msg", "skipping invalid element", "err", err)
				st.skipped++
				continue
			}
		}
		if err := lw.WriteLine(span); err != nil {
			return st, err
		}
		st.elements++
		level.Debug(logger).Log("msg", "wrote element", "index", st.elements-1, "size", len(span))
	}
	return st, nil
}
