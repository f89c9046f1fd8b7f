package management

import (
	"github.com/charmbracelet/lipgloss"
)

// style names understood by Style.Render
const (
	StyleError           = "ERROR"
	StyleSuccess         = "SUCCESS"
	StyleWarning         = "WARNING"
	StyleNotice          = "NOTICE"
	StyleSQLField        = "SQL_FIELD"
	StyleSQLColtype      = "SQL_COLTYPE"
	StyleSQLKeyword      = "SQL_KEYWORD"
	StyleSQLTable        = "SQL_TABLE"
	StyleHTTPInfo        = "HTTP_INFO"
	StyleHTTPSuccess     = "HTTP_SUCCESS"
	StyleHTTPRedirect    = "HTTP_REDIRECT"
	StyleHTTPNotModified = "HTTP_NOT_MODIFIED"
	StyleHTTPBadRequest  = "HTTP_BAD_REQUEST"
	StyleHTTPNotFound    = "HTTP_NOT_FOUND"
	StyleHTTPServerError = "HTTP_SERVER_ERROR"
	StyleMigrateHeading  = "MIGRATE_HEADING"
	StyleMigrateLabel    = "MIGRATE_LABEL"
)

// display order for ShowStyles
var styleNames = []string{
	StyleError,
	StyleSuccess,
	StyleWarning,
	StyleNotice,
	StyleSQLField,
	StyleSQLColtype,
	StyleSQLKeyword,
	StyleSQLTable,
	StyleHTTPInfo,
	StyleHTTPSuccess,
	StyleHTTPRedirect,
	StyleHTTPNotModified,
	StyleHTTPBadRequest,
	StyleHTTPNotFound,
	StyleHTTPServerError,
	StyleMigrateHeading,
	StyleMigrateLabel,
}

// Style renders text in the named command output styles
type Style struct {
	styles map[string]lipgloss.Style
}

// creates the palette on top of renderer
func NewStyle(r *lipgloss.Renderer) *Style {
	base := r.NewStyle()
	fg := func(c string) lipgloss.Style {
		return base.Foreground(lipgloss.Color(c))
	}

	return &Style{
		styles: map[string]lipgloss.Style{
			StyleError:           fg("1").Bold(true),
			StyleSuccess:         fg("2").Bold(true),
			StyleWarning:         fg("3").Bold(true),
			StyleNotice:          fg("1"),
			StyleSQLField:        fg("2").Bold(true),
			StyleSQLColtype:      fg("2"),
			StyleSQLKeyword:      fg("3"),
			StyleSQLTable:        base.Bold(true),
			StyleHTTPInfo:        base.Bold(true),
			StyleHTTPSuccess:     base,
			StyleHTTPRedirect:    fg("2"),
			StyleHTTPNotModified: fg("6"),
			StyleHTTPBadRequest:  fg("1").Bold(true),
			StyleHTTPNotFound:    fg("3"),
			StyleHTTPServerError: fg("5").Bold(true),
			StyleMigrateHeading:  fg("6").Bold(true),
			StyleMigrateLabel:    base.Bold(true),
		},
	}
}

// Render applies the named style, unknown names leave text untouched
func (s *Style) Render(name, text string) string {
	st, ok := s.styles[name]
	if !ok {
		return text
	}

	return st.Render(text)
}

// returns all style names in display order
func Names() []string {
	return append([]string(nil), styleNames...)
}

func (s *Style) Error(text string) string   { return s.Render(StyleError, text) }
func (s *Style) Success(text string) string { return s.Render(StyleSuccess, text) }
func (s *Style) Warning(text string) string { return s.Render(StyleWarning, text) }
func (s *Style) Notice(text string) string  { return s.Render(StyleNotice, text) }
func (s *Style) HTTPInfo(text string) string {
	return s.Render(StyleHTTPInfo, text)
}
