package style

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func NewDefaultTableStyle() *table.Style {
	style := table.Style{
		Name:    "FcoinRounded",
		Box:     table.StyleBoxRounded,
		Format:  table.FormatOptionsDefault,
		HTML:    table.DefaultHTMLOptions,
		Options: table.OptionsDefault,
		Title:   table.TitleOptionsDefault,
		Color:   table.ColorOptionsDefault,
	}
	style.Color.Header = text.Colors{text.FgHiCyan, text.Bold}
	style.Color.Row = text.Colors{text.FgHiWhite}
	style.Color.RowAlternate = text.Colors{text.FgWhite}
	style.Title.Align = text.AlignCenter
	return &style
}

// NewTable returns a table writer rendering to w with the default style and the given header.
func NewTable(w io.Writer, header ...interface{}) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(*NewDefaultTableStyle())
	if len(header) > 0 {
		t.AppendHeader(table.Row(header))
	}
	return t
}
