// File: koy.go
// Title: koy Pipeline Driver
// Description: Chains lexer, parser and interpreter. The Engine wraps the
//              pipeline with structured logging, per-run ids and stage
//              timers, and loads .koy files from disk.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial pipeline driver and engine

package koy

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	koyerror "github.com/msto63/koy/foundation/core/error"
	koylog "github.com/msto63/koy/foundation/core/log"
	"github.com/msto63/koy/foundation/koy/ast"
	"github.com/msto63/koy/foundation/koy/diag"
	"github.com/msto63/koy/foundation/koy/interp"
	"github.com/msto63/koy/foundation/koy/parser"
	"github.com/msto63/koy/foundation/koy/token"
)

// Extension is the file suffix of koy documents
const Extension = ".koy"

// StdinName is the filename used for sources without a backing file
const StdinName = "stdin"

// Run evaluates one source unit: tokenize, parse, then interpret in a fresh
// "<program>" context. The first error from any stage is returned unchanged.
func Run(filename, src string) (interp.Value, *diag.Error) {
	return NewEngine(Options{}).Run(filename, src)
}

// Tokens returns the token stream of src. Comments are included when
// keepComments is set.
func Tokens(filename, src string, keepComments bool) ([]token.Token, *diag.Error) {
	return parser.NewLexer(filename, src, parser.LexerOptions{KeepComments: keepComments}).Tokenize()
}

// ParseSource tokenizes and parses src without evaluating it
func ParseSource(filename, src string) (ast.Node, *diag.Error) {
	tokens, err := parser.Tokenize(filename, src)
	if err != nil {
		return nil, err
	}
	return parser.Parse(tokens)
}

// Options configures an Engine
type Options struct {
	// Logger receives stage timings and failures; nil discards them
	Logger *koylog.Logger

	// MaxDepth bounds nesting; zero means parser.DefaultMaxDepth
	MaxDepth int
}

// Engine runs the pipeline with logging. It keeps no per-run state and is
// safe for concurrent use.
type Engine struct {
	logger *koylog.Logger
	opts   Options
}

// NewEngine creates an engine
func NewEngine(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = koylog.Nop()
	}
	return &Engine{
		logger: logger.WithField("component", "koy-engine"),
		opts:   opts,
	}
}

// Run evaluates one source unit
func (e *Engine) Run(filename, src string) (interp.Value, *diag.Error) {
	logger := e.logger.WithFields(koylog.Fields{
		"run_id": uuid.New().String(),
		"file":   filename,
	})
	logger.Trace("Evaluating source", koylog.Int("bytes", len(src)))

	value, err := e.run(logger, filename, src)
	if err != nil {
		logger.LogError(err.CoreError())
		return nil, err
	}
	return value, nil
}

func (e *Engine) run(logger *koylog.Logger, filename, src string) (interp.Value, *diag.Error) {
	timer := logger.StartTimer("tokenize")
	tokens, err := parser.Tokenize(filename, src)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}
	timer.WithField("tokens", len(tokens)).Stop()

	timer = logger.StartTimer("parse")
	node, err := parser.NewParser(tokens, parser.Options{MaxDepth: e.opts.MaxDepth}).Parse()
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}
	timer.WithField("depth", ast.Depth(node)).Stop()

	timer = logger.StartTimer("evaluate")
	value, err := interp.Evaluate(node, interp.NewContext(interp.RootName))
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}
	timer.WithField("type", value.TypeName()).Stop()

	return value, nil
}

// ResolvePath appends the .koy suffix when path lacks it
func ResolvePath(path string) string {
	if strings.HasSuffix(path, Extension) {
		return path
	}
	return path + Extension
}

// ReadFile loads a koy document. The returned name is the file's base name,
// used as the filename in diagnostics.
func ReadFile(path string) (name, src string, err error) {
	path = ResolvePath(path)
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		code := koyerror.CodeInternal
		msg := fmt.Sprintf("failed to read %s", path)
		if errors.Is(readErr, fs.ErrNotExist) {
			code = koyerror.CodeNotFound
			msg = fmt.Sprintf("file %q does not exist", path)
		}
		return "", "", koyerror.Wrap(readErr, msg).
			WithCode(code).
			WithOperation("koy.ReadFile").
			WithDetail("path", path)
	}
	return filepath.Base(path), string(data), nil
}

// RunFile reads and evaluates a .koy file. A missing suffix is appended.
// The error is either a *koyerror.Error for I/O failures or a *diag.Error
// from the pipeline.
func (e *Engine) RunFile(path string) (interp.Value, error) {
	name, src, err := ReadFile(path)
	if err != nil {
		e.logger.LogError(err)
		return nil, err
	}

	value, diagErr := e.Run(name, src)
	if diagErr != nil {
		return nil, diagErr
	}
	return value, nil
}
