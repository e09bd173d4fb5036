package command

import (
	"errors"
	"fmt"

	"github.com/yndnr/kappa-go/internal/core/domain"
)

// Command is a validated drop command ready to execute.
type Command interface {
	command()
}

// HelpCommand prints the command list.
type HelpCommand struct{}

// ListCommand fetches every drop.
type ListCommand struct{}

// ViewCommand fetches one drop.
type ViewCommand struct {
	Name string
}

// CreateCommand creates a drop.
type CreateCommand struct {
	Request domain.DropCreateRequest
}

// EditCommand changes one field of a drop.
type EditCommand struct {
	Request domain.DropEditRequest
}

// DeleteCommand removes a drop.
type DeleteCommand struct {
	Name string
}

func (HelpCommand) command()   {}
func (ListCommand) command()   {}
func (ViewCommand) command()   {}
func (CreateCommand) command() {}
func (EditCommand) command()   {}
func (DeleteCommand) command() {}

// Messages printed for rejected input.
const (
	msgInvalidType  = "Type argument value must be a valid drop type"
	msgInvalidStock = "Stock argument value must be an integer"
	msgInvalidField = "Edit command argument 1 must be a valid argument (name, param, secret, type, stock)"
)

// InputError is a command rejected before any request is sent. Message is
// shown to the user verbatim.
type InputError struct {
	Message string
	Err     error
}

func (e *InputError) Error() string {
	return e.Message
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Parse turns a tokenized input line into a Command. Unknown commands yield
// a nil Command and a nil error. Arguments beyond those a command uses are
// ignored, except for create which takes exactly five.
func Parse(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, nil
	}

	params := args[1:]

	switch args[0] {
	case "help":
		return HelpCommand{}, nil
	case "list":
		return ListCommand{}, nil
	case "view":
		if len(params) < 1 {
			return nil, arityError("View", 1, len(params))
		}
		return ViewCommand{Name: params[0]}, nil
	case "delete":
		if len(params) < 1 {
			return nil, arityError("Delete", 1, len(params))
		}
		return DeleteCommand{Name: params[0]}, nil
	case "create":
		return parseCreate(params)
	case "edit":
		return parseEdit(params)
	default:
		return nil, nil
	}
}

func parseCreate(params []string) (Command, error) {
	if len(params) != 5 {
		return nil, arityError("Create", 5, len(params))
	}

	dropType, err := domain.ParseDropType(params[3])
	if err != nil {
		return nil, &InputError{Message: msgInvalidType, Err: err}
	}

	stock, err := domain.ParseStock(params[4])
	if err != nil {
		return nil, &InputError{Message: msgInvalidStock, Err: err}
	}

	return CreateCommand{Request: domain.DropCreateRequest{
		Name:   params[0],
		Param:  params[1],
		Secret: params[2],
		Type:   dropType,
		Stock:  stock,
	}}, nil
}

func parseEdit(params []string) (Command, error) {
	if len(params) < 3 {
		return nil, arityError("Edit", 3, len(params))
	}

	field, err := domain.ParseDropField(params[1])
	if err != nil {
		return nil, &InputError{Message: msgInvalidField, Err: err}
	}

	req, err := domain.NewDropEditRequest(params[0], field, params[2])
	switch {
	case err == nil:
		return EditCommand{Request: req}, nil
	case errors.Is(err, domain.ErrInvalidDropType):
		return nil, &InputError{Message: msgInvalidType, Err: err}
	case errors.Is(err, domain.ErrInvalidStock):
		return nil, &InputError{Message: msgInvalidStock, Err: err}
	default:
		return nil, &InputError{Message: msgInvalidField, Err: err}
	}
}

// arityError reports a command given the wrong number of arguments, e.g.
// "Edit command requires 3 arguments, 1 was provided".
func arityError(name string, want, got int) *InputError {
	return &InputError{
		Message: fmt.Sprintf("%s command requires %d %s, %d %s provided",
			name, want, plural(want, "argument", "arguments"), got, plural(got, "was", "were")),
		Err: domain.ErrMissingArguments.WithDetails(fmt.Sprintf("%s: want %d, got %d", name, want, got)),
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
