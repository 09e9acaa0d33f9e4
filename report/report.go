// Package report renders analysis results.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/heshanpadmasiri/codart/analysis"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

const (
	FormatText  = "text"
	FormatTable = "table"
	FormatYAML  = "yaml"
)

var ErrUnknownFormat = errors.New("unknown report format")

// Formats lists the accepted values of Write's format argument.
var Formats = []string{FormatText, FormatTable, FormatYAML}

// Write renders r to w in the given format.
func Write(w io.Writer, r analysis.Report, format string) error {
	switch format {
	case FormatText:
		return writeText(w, r)
	case FormatTable:
		return writeTable(w, r)
	case FormatYAML:
		return writeYAML(w, r)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func writeText(w io.Writer, r analysis.Report) error {
	var sb bytes.Buffer
	fmt.Fprintf(&sb, "no.classes: %d\n", len(r.Classes))
	for i, class := range r.Classes {
		fmt.Fprintf(&sb, "%d.%s:\n", i+1, class.Name)
		fmt.Fprintf(&sb, "\tno.attrs: %d\n", class.Attrs())
		fmt.Fprintf(&sb, "\t\tpublic: %d\n", class.PublicAttrs)
		fmt.Fprintf(&sb, "\t\tprivate: %d\n", class.PrivateAttrs)
		fmt.Fprintf(&sb, "\tno.methods: %d\n", class.Methods)
	}
	_, err := w.Write(sb.Bytes())
	return err
}

func writeTable(w io.Writer, r analysis.Report) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Class", "File", "Public", "Private", "Methods"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	var public, private, methods int
	for i, class := range r.Classes {
		table.Append([]string{
			strconv.Itoa(i + 1),
			class.Name,
			class.Path,
			strconv.Itoa(class.PublicAttrs),
			strconv.Itoa(class.PrivateAttrs),
			strconv.Itoa(class.Methods),
		})
		public += class.PublicAttrs
		private += class.PrivateAttrs
		methods += class.Methods
	}

	table.SetFooter([]string{
		"",
		fmt.Sprintf("Classes %d", len(r.Classes)),
		fmt.Sprintf("Files %d", r.Files),
		strconv.Itoa(public),
		strconv.Itoa(private),
		strconv.Itoa(methods),
	})
	table.Render()

	_, err := w.Write(tableBuffer.Bytes())
	return err
}

func writeYAML(w io.Writer, r analysis.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return enc.Close()
}
