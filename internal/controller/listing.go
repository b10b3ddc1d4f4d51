package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	m "glyphs.dev/pkg/glyphs/internal/model"
	"golang.org/x/text/unicode/runenames"
	"gopkg.in/yaml.v3"
)

// maxInlineCodePoints caps how many hex codes a table cell shows.
const maxInlineCodePoints = 8

// listingEntry is the YAML shape of one scanned input.
type listingEntry struct {
	Path       string   `yaml:"path"`
	Kind       string   `yaml:"kind"`
	CodePoints []string `yaml:"code_points,omitempty"`
	Error      string   `yaml:"error,omitempty"`
}

// listingDocument is the YAML shape of a whole inventory.
type listingDocument struct {
	Total  int            `yaml:"total"`
	Codes  string         `yaml:"codes"`
	Inputs []listingEntry `yaml:"inputs"`
}

func renderListingYAML(inventory m.Inventory) (string, error) {
	doc := listingDocument{
		Total:  inventory.CodePoints.Len(),
		Codes:  m.FormatHexList(inventory.CodePoints),
		Inputs: make([]listingEntry, 0, len(inventory.Scans)),
	}

	for _, scan := range inventory.Scans {
		entry := listingEntry{
			Path: string(scan.File.Path),
			Kind: string(scan.File.Kind),
		}

		if scan.Skipped() {
			entry.Error = scan.Err.Error()
		}

		for _, c := range scan.CodePoints.Sorted() {
			entry.CodePoints = append(entry.CodePoints, c.Hex())
		}

		doc.Inputs = append(doc.Inputs, entry)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal listing: %w", err)
	}

	return string(out), nil
}

func renderListingTable(inventory m.Inventory) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Kind", "Glyphs", "Code Points"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	for _, scan := range inventory.Scans {
		codes := inlineCodePoints(scan.CodePoints)
		count := fmt.Sprintf("%d", scan.CodePoints.Len())

		if scan.Skipped() {
			codes = "skipped: " + scan.Err.Error()
			count = "-"
		}

		table.Append([]string{string(scan.File.Path), string(scan.File.Kind), count, codes})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Inputs %d", len(inventory.Scans)),
		"",
		fmt.Sprintf("%d", inventory.CodePoints.Len()),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func renderSummaryTable(inventory m.Inventory, output m.Path) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Scanned", "Skipped", "Code Points", "Output"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	table.Append([]string{
		fmt.Sprintf("%d", len(inventory.Scanned())),
		fmt.Sprintf("%d", len(inventory.Skipped())),
		fmt.Sprintf("%d", inventory.CodePoints.Len()),
		string(output),
	})

	table.Render()

	return tableBuffer.String()
}

func inlineCodePoints(set m.CodePointSet) string {
	points := set.Sorted()

	hexes := make([]string, 0, maxInlineCodePoints+1)
	for i, c := range points {
		if i == maxInlineCodePoints {
			hexes = append(hexes, fmt.Sprintf("… +%d", len(points)-maxInlineCodePoints))
			break
		}

		hexes = append(hexes, c.Hex())
	}

	return strings.Join(hexes, m.HexSeparator)
}

// glyphName returns the Unicode character name, or the U+ notation when the
// name table has no entry.
func glyphName(c m.CodePoint) string {
	if name := runenames.Name(rune(c)); name != "" {
		return name
	}

	return c.String()
}
