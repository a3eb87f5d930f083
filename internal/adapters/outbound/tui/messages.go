package tui

import (
	"errors"

	"github.com/truestock/truestock/internal/domain"
)

// Success messages shown after each mutation.
const (
	MsgAdded     = "Product added successfully!"
	MsgRemoved   = "Product removed successfully!"
	MsgRestocked = "Restocked successfully!"
	MsgReserved  = "Reserved successfully!"
	MsgNoMatch   = "Product not found!"
)

var (
	errorTagStyle = failStyle.Bold(true)
	warnTagStyle  = warnStyle.Bold(true)
)

// RenderSuccess renders a confirmation line.
func RenderSuccess(msg string) string {
	return "  " + passStyle.Render("✓") + " " + msg + "\n"
}

// RenderNoMatch renders the notice for a filtered search with no results.
func RenderNoMatch() string {
	return "  " + warnTagStyle.Render("!") + " " + MsgNoMatch + "\n"
}

// RenderError renders an engine error with a tag for its kind. The error
// message itself is shown verbatim.
func RenderError(err error) string {
	return "  " + errorTagStyle.Render(ErrorTag(err)) + " " + errorMessage(err) + "\n"
}

// ErrorTag is the short label shown in front of an error message.
func ErrorTag(err error) string {
	switch domain.ErrorKind(err) {
	case domain.KindValidation:
		return "invalid input"
	case domain.KindNotFound:
		return "not found"
	case domain.KindInsufficientStock:
		return "insufficient stock"
	default:
		return "error"
	}
}

// errorMessage strips outer wrapping so the user sees the engine's message.
func errorMessage(err error) string {
	var (
		ve *domain.ValidationError
		ne *domain.NotFoundError
		ie *domain.InsufficientStockError
	)
	switch {
	case errors.As(err, &ve):
		return ve.Error()
	case errors.As(err, &ne):
		return ne.Error()
	case errors.As(err, &ie):
		return ie.Error()
	default:
		return err.Error()
	}
}
