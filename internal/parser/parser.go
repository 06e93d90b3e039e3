package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// Document is a loaded history export. Root holds the decoded JSON value
// with numbers kept as json.Number so codes keep their literal text.
type Document struct {
	Source string
	Root   any
}

type Kind string

const (
	KindIO    Kind = "IOError"
	KindParse Kind = "ParseError"
)

var (
	ErrIO    = errors.New("io error")
	ErrParse = errors.New("parse error")
)

// Error is returned by Load. Match it with errors.Is(err, ErrIO) or
// errors.Is(err, ErrParse).
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	switch target {
	case ErrIO:
		return e.Kind == KindIO
	case ErrParse:
		return e.Kind == KindParse
	}
	return false
}

// Load reads the whole file at path and decodes it as a single JSON value.
func Load(path string) (Document, error) {
	src := filepath.Clean(path)
	f, err := os.Open(src)
	if err != nil {
		return Document{}, &Error{Kind: KindIO, Path: src, Err: err}
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return Document{}, &Error{Kind: KindIO, Path: src, Err: fmt.Errorf("read: %w", err)}
	}

	root, err := decode(b)
	if err != nil {
		return Document{}, &Error{Kind: KindParse, Path: src, Err: err}
	}
	return Document{Source: src, Root: root}, nil
}

func decode(b []byte) (any, error) {
	if !utf8.Valid(b) {
		return nil, errors.New("content is not valid UTF-8")
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}
	// exactly one value; only whitespace may follow
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("extra data after JSON value at offset %d", dec.InputOffset())
	}
	return root, nil
}
