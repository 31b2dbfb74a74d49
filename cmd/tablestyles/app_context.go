package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tablestyles/internal/application/templates"
	"github.com/alexisbeaulieu97/tablestyles/internal/domain/stylesheet"
	"github.com/alexisbeaulieu97/tablestyles/internal/domain/template"
	infraconfig "github.com/alexisbeaulieu97/tablestyles/internal/infrastructure/config"
	"github.com/alexisbeaulieu97/tablestyles/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/tablestyles/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/tablestyles/internal/logger"
	"github.com/alexisbeaulieu97/tablestyles/internal/ports"
)

// appContext bundles the services a command needs. Logs go to the command's
// error stream so stdout carries only results.
type appContext struct {
	ctx       context.Context
	log       *logger.Logger
	logger    ports.Logger
	store     *infraconfig.DocumentStore
	publisher *events.LoggingPublisher
	compiler  *stylesheet.Compiler
	templates *templates.Service
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	errOut := cmd.ErrOrStderr()

	log, err := logger.New(logger.Options{Level: flags.logLevel, HumanReadable: !flags.jsonLogs, Writer: errOut})
	if err != nil {
		return nil, newCommandError(cmd.Name(), "configuring logging", err, "Use one of debug, info, warn or error for --log-level.")
	}

	var portLogger ports.Logger
	if flags.jsonLogs {
		portLogger = log.Port()
	} else {
		adapter, err := logging.New(logging.Options{
			Writer:    errOut,
			Level:     flags.logLevel,
			Layer:     "application",
			Component: cmd.Name(),
		})
		if err != nil {
			return nil, newCommandError(cmd.Name(), "configuring logging", err, "Use one of debug, info, warn or error for --log-level.")
		}
		portLogger = adapter
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())

	compiler := stylesheet.NewCompiler(stylesheet.Options{Scope: flags.scope})
	publisher := events.NewLoggingPublisher(portLogger.With("component", "events"))

	return &appContext{
		ctx:       ctx,
		log:       log.WithFields(map[string]any{"command": cmd.Name()}),
		logger:    portLogger,
		store:     infraconfig.NewDocumentStore(portLogger.With("component", "document_store")),
		publisher: publisher,
		compiler:  compiler,
		templates: templates.NewService(compiler, publisher, portLogger.With("component", "template_service")),
	}, nil
}

// loadDocument reads path and installs it in the template service.
func (a *appContext) loadDocument(operation, path string) (template.Document, error) {
	doc, err := a.store.Load(a.ctx, path)
	if err != nil {
		return template.Document{}, newCommandError(operation, "loading "+path, err, documentSuggestion(err))
	}
	if err := a.templates.Initialize(a.ctx, doc); err != nil {
		return template.Document{}, newCommandError(operation, "loading "+path, err, documentSuggestion(err))
	}
	return a.templates.Document(), nil
}

func documentSuggestion(err error) string {
	switch {
	case template.HasCode(err, template.ErrCodeNotFound):
		return "Check that the document path exists."
	case template.HasCode(err, template.ErrCodeConflict):
		return "Give every template a unique id."
	case template.HasCode(err, template.ErrCodeFormat):
		return "Fix the document syntax; template ids start with a letter followed by letters, digits or '-'."
	default:
		return "Run 'tablestyles validate' on the document to list every problem."
	}
}
