package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/rodaine/table"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	formatTable   = "table"
	formatText    = "text"
	formatJSON    = "json"
	formatMsgpack = "msgpack"

	formatNames = formatTable + "|" + formatText + "|" + formatJSON + "|" + formatMsgpack

	maxCell = 40
)

type writer interface {
	write(doc *document) error
}

func newWriter(format string, w io.Writer) (writer, error) {
	switch format {
	case formatTable:
		return &tableWriter{w: w}, nil
	case formatText:
		return &textWriter{w: w}, nil
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return &jsonWriter{enc: enc}, nil
	case formatMsgpack:
		return &msgpackWriter{enc: msgpack.NewEncoder(w)}, nil
	default:
		return nil, fmt.Errorf("%w: %q (expected %s)", errUnknownFormat, format, formatNames)
	}
}

type tableWriter struct {
	w     io.Writer
	count int
}

func (t *tableWriter) write(doc *document) error {
	if t.count > 0 {
		fmt.Fprintln(t.w)
	}

	t.count++

	fmt.Fprintln(t.w, color.New(color.Bold).Sprint(doc.name))

	tbl := table.New("#", "start", "end", "text").
		WithWriter(t.w).
		WithWidthFunc(runewidth.StringWidth).
		WithHeaderFormatter(color.New(color.FgGreen, color.Underline).SprintfFunc()).
		WithFirstColumnFormatter(color.New(color.FgYellow).SprintfFunc())

	for i, s := range doc.splits {
		tbl.AddRow(i, s.Start, s.End, cell(s.Text(doc.text)))
	}

	tbl.Print()

	return nil
}

// cell quotes text and shortens it to fit a table column.
func cell(text string) string {
	q := strconv.Quote(text)
	if runewidth.StringWidth(q) <= maxCell {
		return q
	}

	return runewidth.Truncate(q, maxCell, "…")
}

type textWriter struct {
	w io.Writer
}

func (t *textWriter) write(doc *document) error {
	var b strings.Builder

	for _, s := range doc.splits {
		fmt.Fprintf(&b, "%s\t%d\t%d\t%q\n", doc.name, s.Start, s.End, s.Text(doc.text))
	}

	_, err := io.WriteString(t.w, b.String())

	return err
}

type jsonSplit struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

type jsonDocument struct {
	File   string      `json:"file"`
	Splits []jsonSplit `json:"splits"`
}

type jsonWriter struct {
	enc *json.Encoder
}

func (j *jsonWriter) write(doc *document) error {
	out := jsonDocument{File: doc.name, Splits: make([]jsonSplit, len(doc.splits))}
	for i, s := range doc.splits {
		out.Splits[i] = jsonSplit{Start: s.Start, End: s.End, Text: s.Text(doc.text)}
	}

	return j.enc.Encode(out)
}

// msgpackDocument is a compact record: offsets as [start, end] pairs.
type msgpackDocument struct {
	File   string      `msgpack:"file"`
	Splits [][2]uint32 `msgpack:"splits"`
}

type msgpackWriter struct {
	enc *msgpack.Encoder
}

func (m *msgpackWriter) write(doc *document) error {
	out := msgpackDocument{File: doc.name, Splits: make([][2]uint32, len(doc.splits))}

	for i, s := range doc.splits {
		start, err := safecast.Conv[uint32](s.Start)
		if err != nil {
			return fmt.Errorf("%s: split %d: %w", doc.name, i, err)
		}

		end, err := safecast.Conv[uint32](s.End)
		if err != nil {
			return fmt.Errorf("%s: split %d: %w", doc.name, i, err)
		}

		out.Splits[i] = [2]uint32{start, end}
	}

	return m.enc.Encode(out)
}
