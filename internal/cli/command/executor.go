package command

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/oklog/ulid/v2"

	"github.com/yndnr/kappa-go/internal/cli/output"
	"github.com/yndnr/kappa-go/internal/core/domain"
	"github.com/yndnr/kappa-go/internal/telemetry/logger"
)

// DropService is the remote drop API.
type DropService interface {
	ListDrops(ctx context.Context) ([]domain.Drop, error)
	GetDrop(ctx context.Context, name string) (domain.Drop, error)
	CreateDrop(ctx context.Context, req domain.DropCreateRequest) (domain.OperationResult, error)
	EditDrop(ctx context.Context, req domain.DropEditRequest) (domain.EditResult, error)
	DeleteDrop(ctx context.Context, name string) (domain.OperationResult, error)
}

// Executor runs drop commands and reports every outcome on its writer.
type Executor struct {
	service   DropService
	printer   *output.Printer
	format    output.Format
	formatter output.Formatter
}

// NewExecutor creates an executor rendering to w in the given format.
func NewExecutor(svc DropService, w io.Writer, format output.Format, useColor bool) *Executor {
	return &Executor{
		service:   svc,
		printer:   output.NewPrinter(w, useColor),
		format:    format,
		formatter: output.NewFormatter(format),
	}
}

// Dispatch parses and executes one tokenized input line. Unknown commands
// are ignored silently.
func (e *Executor) Dispatch(ctx context.Context, args []string) {
	e.Run(ctx, args)
}

// Run parses and executes args, reporting whether the command succeeded.
// Unknown commands count as failures.
func (e *Executor) Run(ctx context.Context, args []string) bool {
	cmd, err := Parse(args)
	if err != nil {
		var inputErr *InputError
		if errors.As(err, &inputErr) {
			logger.FromContext(ctx).Debug("command rejected", "command", args[0], "error", inputErr.Err)
		}
		e.printer.Failure(err.Error())
		return false
	}
	if cmd == nil {
		return false
	}

	ctx = logger.WithRequestID(ctx, ulid.Make().String())
	logger.L(ctx).Debug("executing command", "command", args[0])

	return e.Execute(ctx, cmd)
}

// Execute runs a validated command.
func (e *Executor) Execute(ctx context.Context, cmd Command) bool {
	switch c := cmd.(type) {
	case HelpCommand:
		e.printer.Message(helpText)
		return true
	case ListCommand:
		return e.list(ctx)
	case ViewCommand:
		return e.view(ctx, c.Name)
	case CreateCommand:
		return e.create(ctx, c.Request)
	case EditCommand:
		return e.edit(ctx, c.Request)
	case DeleteCommand:
		return e.delete(ctx, c.Name)
	default:
		return false
	}
}

func (e *Executor) list(ctx context.Context) bool {
	drops, err := e.service.ListDrops(ctx)
	if err != nil {
		e.requestFailed(ctx, "getting drops", err)
		return false
	}

	if len(drops) == 0 && !e.format.Structured() {
		e.printer.Message("There are currently no drops")
		return true
	}
	if drops == nil {
		drops = []domain.Drop{}
	}
	return e.render(ctx, drops)
}

func (e *Executor) view(ctx context.Context, name string) bool {
	drop, err := e.service.GetDrop(ctx, name)
	if err != nil {
		if isMalformed(err) {
			e.notFound(ctx, name, err)
		} else {
			e.requestFailed(ctx, "getting drop", err)
		}
		return false
	}
	return e.render(ctx, drop)
}

func (e *Executor) create(ctx context.Context, req domain.DropCreateRequest) bool {
	result, err := e.service.CreateDrop(ctx, req)
	if err != nil && !isMalformed(err) {
		e.requestFailed(ctx, "creating drop", err)
		return false
	}
	if err != nil || !result.Success {
		logger.L(ctx).Debug("create rejected", "name", req.Name, "error", err)
		e.printer.Failure("There was an error creating the drop")
		return false
	}

	if e.format.Structured() {
		return e.render(ctx, result)
	}
	e.printer.Message(fmt.Sprintf("Drop: %s has been created", req.Name))
	return true
}

func (e *Executor) edit(ctx context.Context, req domain.DropEditRequest) bool {
	result, err := e.service.EditDrop(ctx, req)
	if err != nil && !isMalformed(err) {
		e.requestFailed(ctx, "editing drop", err)
		return false
	}
	if err != nil || !result.Success {
		e.notFound(ctx, req.Name, err)
		return false
	}

	if e.format.Structured() {
		return e.render(ctx, result)
	}
	e.printer.Message(fmt.Sprintf("Drop: %s has been edited", req.Name))
	return true
}

func (e *Executor) delete(ctx context.Context, name string) bool {
	result, err := e.service.DeleteDrop(ctx, name)
	if err != nil && !isMalformed(err) {
		e.requestFailed(ctx, "deleting drop", err)
		return false
	}
	if err != nil || !result.Success {
		e.notFound(ctx, name, err)
		return false
	}

	if e.format.Structured() {
		return e.render(ctx, result)
	}
	e.printer.Message(fmt.Sprintf("Drop: %s has been deleted", name))
	return true
}

func (e *Executor) render(ctx context.Context, data any) bool {
	if err := e.formatter.Format(e.printer.Writer(), data); err != nil {
		logger.L(ctx).Warn("failed to render output", "format", e.format, "error", err)
		return false
	}
	return true
}

// requestFailed reports a request that got no usable response.
func (e *Executor) requestFailed(ctx context.Context, action string, err error) {
	logger.L(ctx).Debug("request failed", "action", action, "code", domain.GetErrorCode(err), "error", err)
	e.printer.Failure(fmt.Sprintf("Error while %s:\n%s", action, underlying(err)))
}

func (e *Executor) notFound(ctx context.Context, name string, err error) {
	logger.L(ctx).Debug("drop not found", "name", name, "code", domain.GetErrorCode(err), "error", err)
	e.printer.Failure("There are no drops named: " + name)
}

func isMalformed(err error) bool {
	return errors.Is(err, domain.ErrMalformedResponse)
}

// underlying describes err without the operation prefix or error code:
// the cause of a domain error, or its message when it has none.
func underlying(err error) string {
	var de *domain.DomainError
	if !errors.As(err, &de) {
		return err.Error()
	}
	if de.Cause != nil {
		return de.Cause.Error()
	}
	if de.Details != "" {
		return de.Message + ": " + de.Details
	}
	return de.Message
}
