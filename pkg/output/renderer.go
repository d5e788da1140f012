package output

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"text/template"

	"github.com/arthur-debert/gradlepatch/pkg/errors"
	"github.com/arthur-debert/gradlepatch/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Renderer writes command results to an output in one Format
type Renderer struct {
	writer    io.Writer
	format    Format
	styles    Styles
	templates *template.Template
	logger    zerolog.Logger
}

// NewRenderer creates a renderer. FormatAuto must be resolved with
// DetectFormat by the caller; it is treated as FormatText here.
func NewRenderer(w io.Writer, format Format, logger zerolog.Logger) (*Renderer, error) {
	r := &Renderer{writer: w, format: format, logger: logger}
	if format == FormatTerminal {
		styles, err := ParseStyles(defaultStyles, lipgloss.NewRenderer(w))
		if err != nil {
			return nil, err
		}
		r.styles = styles
	}

	tmpl, err := template.New("output").
		Funcs(template.FuncMap{"style": r.style}).
		ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to parse templates")
	}
	r.templates = tmpl

	logger.Debug().
		Str("format", format.String()).
		Msg("Created renderer")
	return r, nil
}

// Format is the resolved output format
func (r *Renderer) Format() Format {
	return r.format
}

// WithStyles replaces the styles used in FormatTerminal
func (r *Renderer) WithStyles(s Styles) *Renderer {
	if r.format == FormatTerminal {
		r.styles = s
	}
	return r
}

func (r *Renderer) style(name string, text string) string {
	if r.styles == nil {
		return text
	}
	return r.styles.Get(name).Render(text)
}

// RenderInject renders the result of an injection run
func (r *Renderer) RenderInject(result *types.InjectResult) error {
	if r.format == FormatJSON {
		return r.json(result)
	}
	return r.execute("inject.tmpl", result)
}

// RenderError renders err with its code details
func (r *Renderer) RenderError(err error) error {
	if r.format == FormatJSON {
		return r.json(map[string]interface{}{
			"error":   err.Error(),
			"code":    errors.GetErrorCode(err),
			"details": errors.GetErrorDetails(err),
		})
	}
	return r.execute("error.tmpl", map[string]interface{}{
		"Message": err.Error(),
		"Details": errors.GetErrorDetails(err),
	})
}

// RenderMessage writes message in the named style
func (r *Renderer) RenderMessage(style, message string) error {
	if r.format == FormatJSON {
		return r.json(map[string]string{"message": message})
	}
	_, err := fmt.Fprintln(r.writer, r.style(style, message))
	return err
}

// RenderValue writes v as JSON in FormatJSON and with fmt otherwise
func (r *Renderer) RenderValue(key string, v interface{}) error {
	if r.format == FormatJSON {
		return r.json(map[string]interface{}{key: v})
	}
	_, err := fmt.Fprintln(r.writer, v)
	return err
}

func (r *Renderer) execute(name string, data interface{}) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to execute template %s", name)
	}
	r.logger.Trace().
		Str("template", name).
		Str("output", buf.String()).
		Msg("Template executed")
	_, err := r.writer.Write(buf.Bytes())
	return err
}

func (r *Renderer) json(v interface{}) error {
	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
