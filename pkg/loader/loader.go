// Package loader reads theme and preset documents from disk and installs
// them into a registry.
//
// A document names its kind and id next to the record itself:
//
//	kind = "theme"
//	id = "noir"
//	[theme]
//	schemaVersion = "v1"
//	displayName = "Noir"
//	...
//
// YAML documents use the same keys.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/investigator-themes/pkg/preset"
	"gitlab.com/tinyland/lab/investigator-themes/pkg/registry"
	"gitlab.com/tinyland/lab/investigator-themes/pkg/theme"
	"gitlab.com/tinyland/lab/investigator-themes/pkg/validation"
)

// Document kinds.
const (
	KindTheme  = "theme"
	KindPreset = "preset"
)

// ErrUnknownKind is returned for a document whose kind is neither "theme"
// nor "preset".
var ErrUnknownKind = errors.New("unknown document kind")

// Document is one decoded theme or preset file.
type Document struct {
	Kind   string         `toml:"kind" yaml:"kind"`
	ID     string         `toml:"id" yaml:"id"`
	Theme  *theme.Seed    `toml:"theme" yaml:"theme"`
	Preset *preset.Preset `toml:"preset" yaml:"preset"`

	// Source is the file the document was read from.
	Source string `toml:"-" yaml:"-"`
}

// FileError ties a failure to the file it came from.
type FileError struct {
	File string
	Err  error
}

func (e *FileError) Error() string { return e.File + ": " + e.Err.Error() }

func (e *FileError) Unwrap() error { return e.Err }

// Result lists the ids installed by a load, in install order.
type Result struct {
	Themes  []string
	Presets []string
}

// Loader installs documents into an Installer.
type Loader struct {
	inst   registry.Installer
	logger *zap.Logger
}

// New creates a loader that installs into inst. A nil logger discards log
// output.
func New(inst registry.Installer, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{inst: inst, logger: logger}
}

// IsDocument reports whether name has an extension the loader reads.
func IsDocument(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".toml", ".yaml", ".yml":
		return true
	}
	return false
}

// Decode parses a document, choosing TOML or YAML by the extension of name.
// It checks the document's shape but leaves record validation to install.
func Decode(name string, data []byte) (Document, error) {
	var doc Document
	switch strings.ToLower(path.Ext(name)) {
	case ".toml":
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return Document{}, fmt.Errorf("parse TOML: %w", err)
		}
		for _, k := range md.Undecoded() {
			if len(k) > 1 && k[0] == KindTheme && theme.InStyleTable(k[1:]) {
				continue
			}
			return Document{}, fmt.Errorf("unknown key %q", k.String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return Document{}, fmt.Errorf("parse YAML: %w", err)
		}
	default:
		return Document{}, fmt.Errorf("unsupported extension %q", path.Ext(name))
	}
	doc.Source = name

	var c validation.Collector
	if strings.TrimSpace(doc.ID) == "" {
		c.Add("id", "is required")
	}
	switch doc.Kind {
	case KindTheme:
		if doc.Theme == nil {
			c.Add("theme", "is required for kind %q", doc.Kind)
		} else {
			c.Merge("theme", theme.Validate(*doc.Theme))
		}
		if doc.Preset != nil {
			c.Add("preset", "not allowed for kind %q", doc.Kind)
		}
	case KindPreset:
		if doc.Preset == nil {
			c.Add("preset", "is required for kind %q", doc.Kind)
		} else {
			// defaultTheme is resolved at install, against the registry.
			c.Merge("preset", preset.Validate(*doc.Preset, nil))
		}
		if doc.Theme != nil {
			c.Add("theme", "not allowed for kind %q", doc.Kind)
		}
	case "":
		c.Add("kind", "is required")
	default:
		return Document{}, fmt.Errorf("%w %q", ErrUnknownKind, doc.Kind)
	}
	if err := c.Err(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// LoadFS reads every document under root in fsys and installs it.
// Themes are installed before presets so presets may name themes from the
// same load. A failing file is skipped; the returned error combines a
// *FileError for each one.
func (l *Loader) LoadFS(fsys fs.FS, root string) (Result, error) {
	docs, err := l.collect(fsys, root, "")
	res, installErr := l.Install(docs)
	return res, multierr.Append(err, installErr)
}

// LoadDirs is LoadFS over several directories on disk. Directories that do
// not exist are skipped.
func (l *Loader) LoadDirs(dirs ...string) (Result, error) {
	var (
		docs []Document
		errs error
	)
	for _, dir := range dirs {
		if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
			l.logger.Debug("document directory missing", zap.String("dir", dir))
			continue
		}
		d, err := l.collect(os.DirFS(dir), ".", dir)
		docs = append(docs, d...)
		errs = multierr.Append(errs, err)
	}
	res, err := l.Install(docs)
	return res, multierr.Append(errs, err)
}

// LoadFiles decodes and installs the named files.
func (l *Loader) LoadFiles(files ...string) (Result, error) {
	var (
		docs []Document
		errs error
	)
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			errs = multierr.Append(errs, &FileError{File: f, Err: err})
			continue
		}
		doc, err := Decode(f, data)
		if err != nil {
			errs = multierr.Append(errs, &FileError{File: f, Err: err})
			continue
		}
		docs = append(docs, doc)
	}
	res, err := l.Install(docs)
	return res, multierr.Append(errs, err)
}

// Install installs every theme document, then every preset document.
func (l *Loader) Install(docs []Document) (Result, error) {
	var (
		res  Result
		errs error
	)
	for _, kind := range []string{KindTheme, KindPreset} {
		for _, doc := range docs {
			if doc.Kind != kind {
				continue
			}
			var err error
			if kind == KindTheme {
				err = l.inst.InstallTheme(doc.ID, *doc.Theme)
			} else {
				err = l.inst.InstallPreset(doc.ID, *doc.Preset)
			}
			if err != nil {
				// Field paths in a document sit under its theme or preset table.
				if errors.Is(err, validation.ErrInvalid) {
					var c validation.Collector
					c.Merge(kind, err)
					err = c.Err()
				}
				l.logger.Warn("document rejected",
					zap.String("file", doc.Source),
					zap.String("kind", kind),
					zap.String("id", doc.ID),
					zap.Error(err),
				)
				errs = multierr.Append(errs, &FileError{File: doc.Source, Err: err})
				continue
			}
			if kind == KindTheme {
				res.Themes = append(res.Themes, doc.ID)
			} else {
				res.Presets = append(res.Presets, doc.ID)
			}
		}
	}
	l.logger.Info("documents installed",
		zap.Int("themes", len(res.Themes)),
		zap.Int("presets", len(res.Presets)),
		zap.Int("failed", len(multierr.Errors(errs))),
	)
	return res, errs
}

// collect decodes every document under root. display prefixes the file
// names used in errors and logs.
func (l *Loader) collect(fsys fs.FS, root, display string) ([]Document, error) {
	var (
		docs []Document
		errs error
	)
	walkErr := fs.WalkDir(fsys, root, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			errs = multierr.Append(errs, &FileError{File: joinDisplay(display, name), Err: err})
			return nil
		}
		if d.IsDir() || !IsDocument(name) {
			return nil
		}
		file := joinDisplay(display, name)
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			errs = multierr.Append(errs, &FileError{File: file, Err: err})
			return nil
		}
		doc, err := Decode(name, data)
		if err != nil {
			l.logger.Warn("document skipped", zap.String("file", file), zap.Error(err))
			errs = multierr.Append(errs, &FileError{File: file, Err: err})
			return nil
		}
		doc.Source = file
		docs = append(docs, doc)
		return nil
	})
	if walkErr != nil {
		errs = multierr.Append(errs, fmt.Errorf("loader: walk %s: %w", joinDisplay(display, root), walkErr))
	}
	return docs, errs
}

func joinDisplay(display, name string) string {
	if display == "" {
		return name
	}
	return display + string(os.PathSeparator) + name
}
