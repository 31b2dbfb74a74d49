package config

import (
	"context"
	"errors"
	"os"
	"sort"
	"strings"

	"go.uber.org/multierr"

	cfgpkg "github.com/alexisbeaulieu97/tablestyles/internal/config"
	"github.com/alexisbeaulieu97/tablestyles/internal/domain/template"
	"github.com/alexisbeaulieu97/tablestyles/internal/ports"
	apperrors "github.com/alexisbeaulieu97/tablestyles/pkg/errors"
)

// DocumentStore implements the DocumentLoader and DocumentWriter ports on
// top of YAML, JSON and JSONC files.
type DocumentStore struct {
	logger ports.Logger
}

func NewDocumentStore(logger ports.Logger) *DocumentStore {
	return &DocumentStore{logger: logger}
}

var (
	_ ports.DocumentLoader = (*DocumentStore)(nil)
	_ ports.DocumentWriter = (*DocumentStore)(nil)
)

func (s *DocumentStore) Load(ctx context.Context, path string) (template.Document, error) {
	if err := contextCheck(ctx); err != nil {
		return template.Document{}, err
	}

	s.logDebug(ctx, "loading template document", map[string]interface{}{"path": path})

	info, err := os.Stat(path)
	if err != nil {
		s.logError(ctx, "document path stat failed", err, map[string]interface{}{"path": path})
		return template.Document{}, convertError(err, path)
	}
	if info.IsDir() {
		return template.Document{}, template.NewDomainError(template.ErrCodeValidation, "document path is a directory", nil, map[string]interface{}{"path": path})
	}

	file, err := cfgpkg.ParseFile(path)
	if err != nil {
		s.logError(ctx, "failed to parse document", err, map[string]interface{}{"path": path})
		return template.Document{}, convertError(err, path)
	}

	if err := contextCheck(ctx); err != nil {
		return template.Document{}, err
	}

	doc, err := cfgpkg.ToDomain(file)
	if err != nil {
		s.logError(ctx, "document failed domain validation", err, map[string]interface{}{"path": path})
		return template.Document{}, err
	}

	s.logInfo(ctx, "template document loaded", map[string]interface{}{"path": path, "templates": len(doc.Templates)})
	return doc, nil
}

// Save writes doc to path atomically, encoding it according to the extension.
func (s *DocumentStore) Save(ctx context.Context, path string, doc template.Document) error {
	if err := contextCheck(ctx); err != nil {
		return err
	}

	format, err := cfgpkg.FormatFromPath(path)
	if err != nil {
		return template.NewDomainError(template.ErrCodeValidation, "unsupported document file extension", err, map[string]interface{}{"path": path})
	}

	data, err := cfgpkg.Marshal(cfgpkg.FromDomain(doc), format)
	if err != nil {
		return template.NewDomainError(template.ErrCodeInternal, "document encoding failed", err, map[string]interface{}{"path": path})
	}

	if err := WriteFileAtomic(path, data); err != nil {
		s.logError(ctx, "failed to write document", err, map[string]interface{}{"path": path})
		return convertError(err, path)
	}

	s.logInfo(ctx, "template document saved", map[string]interface{}{"path": path, "templates": len(doc.Templates), "format": string(format)})
	return nil
}

// WriteFileAtomic writes data to a sibling temporary file and renames it over path.
func WriteFileAtomic(path string, data []byte) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return apperrors.NewWriteError(path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return apperrors.NewWriteError(path, err)
	}
	return nil
}

func convertError(err error, path string) error {
	if err == nil {
		return nil
	}

	var parseErr *apperrors.ParseError
	if errors.As(err, &parseErr) {
		if errors.Is(parseErr.Err, os.ErrNotExist) {
			return template.NewDomainError(template.ErrCodeNotFound, "document not found", parseErr.Err, map[string]interface{}{"path": path})
		}
		return template.NewDomainError(template.ErrCodeFormat, "invalid document syntax", err, map[string]interface{}{"path": parseErr.Path, "line": parseErr.Line})
	}

	// Schema failures arrive as a multierr of ValidationErrors; every one is
	// kept so the caller can report all of them.
	var valErr *apperrors.ValidationError
	if errors.As(err, &valErr) {
		var out error
		for _, e := range multierr.Errors(err) {
			out = multierr.Append(out, convertValidationError(e, path))
		}
		return out
	}

	var writeErr *apperrors.WriteError
	if errors.As(err, &writeErr) {
		return template.NewDomainError(template.ErrCodeInternal, "document write failed", err, map[string]interface{}{"path": writeErr.Path})
	}

	if errors.Is(err, os.ErrNotExist) {
		return template.NewDomainError(template.ErrCodeNotFound, "document not found", err, map[string]interface{}{"path": path})
	}
	return template.NewDomainError(template.ErrCodeInternal, "document load failed", err, map[string]interface{}{"path": path})
}

func convertValidationError(err error, path string) error {
	var valErr *apperrors.ValidationError
	if !errors.As(err, &valErr) {
		return template.NewDomainError(template.ErrCodeValidation, err.Error(), err, map[string]interface{}{"path": path})
	}

	context := map[string]interface{}{"path": path}
	if valErr.Field != "" {
		context["field"] = valErr.Field
	}
	code := template.ErrCodeValidation
	msg := strings.ToLower(valErr.Message)
	switch {
	case strings.Contains(msg, "duplicate template id"):
		code = template.ErrCodeConflict
	case strings.HasSuffix(valErr.Field, ".id"):
		code = template.ErrCodeFormat
	}
	return template.NewDomainError(code, valErr.Message, valErr.Err, context)
}

func contextCheck(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	return ctx.Err()
}

func (s *DocumentStore) logDebug(ctx context.Context, msg string, fields map[string]interface{}) {
	if s.logger == nil {
		return
	}
	s.logger.Debug(ctx, msg, flattenFields(fields)...)
}

func (s *DocumentStore) logInfo(ctx context.Context, msg string, fields map[string]interface{}) {
	if s.logger == nil {
		return
	}
	s.logger.Info(ctx, msg, flattenFields(fields)...)
}

func (s *DocumentStore) logError(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if s.logger == nil {
		return
	}
	payload := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["error"] = err
	s.logger.Error(ctx, msg, flattenFields(payload)...)
}

func flattenFields(fields map[string]interface{}) []interface{} {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]interface{}, 0, len(fields)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return args
}
