package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// PrintTable writes a table with the given headers and data to w.
// data should be a flat list of strings, length must be a multiple of len(headers).
// useLineChars determines if Unicode box drawing characters are used.
func PrintTable(w io.Writer, headers []string, data []string, useLineChars bool) {
	cols := len(headers)
	if cols == 0 {
		return
	}

	colWidths := make([]int, cols)
	for i, h := range headers {
		if l := ansi.StringWidth(h); l > colWidths[i] {
			colWidths[i] = l
		}
	}
	for i, d := range data {
		col := i % cols
		if l := ansi.StringWidth(d); l > colWidths[col] {
			colWidths[col] = l
		}
	}

	var charSet map[string]string
	if useLineChars {
		charSet = map[string]string{
			"TopLeft":     "┌",
			"TopRight":    "┐",
			"BottomLeft":  "└",
			"BottomRight": "┘",
			"Horizontal":  "─",
			"Vertical":    "│",
			"Cross":       "┼",
			"TLeft":       "├",
			"TRight":      "┤",
			"TTop":        "┬",
			"TBottom":     "┴",
		}
	} else {
		charSet = map[string]string{
			"TopLeft":     "+",
			"TopRight":    "+",
			"BottomLeft":  "+",
			"BottomRight": "+",
			"Horizontal":  "-",
			"Vertical":    "|",
			"Cross":       "+",
			"TLeft":       "+",
			"TRight":      "+",
			"TTop":        "+",
			"TBottom":     "+",
		}
	}

	var topBorder, middleBorder, bottomBorder strings.Builder
	topBorder.WriteString(charSet["TopLeft"])
	middleBorder.WriteString(charSet["TLeft"])
	bottomBorder.WriteString(charSet["BottomLeft"])

	for i := 0; i < cols; i++ {
		dashes := strings.Repeat(charSet["Horizontal"], colWidths[i]+2)
		topBorder.WriteString(dashes)
		middleBorder.WriteString(dashes)
		bottomBorder.WriteString(dashes)

		if i < cols-1 {
			topBorder.WriteString(charSet["TTop"])
			middleBorder.WriteString(charSet["Cross"])
			bottomBorder.WriteString(charSet["TBottom"])
		} else {
			topBorder.WriteString(charSet["TopRight"])
			middleBorder.WriteString(charSet["TRight"])
			bottomBorder.WriteString(charSet["BottomRight"])
		}
	}

	printRow := func(rowItems []string) {
		var row strings.Builder
		row.WriteString(charSet["Vertical"])
		for i, item := range rowItems {
			padding := colWidths[i] - ansi.StringWidth(item)
			row.WriteString(" ")
			row.WriteString(item)
			row.WriteString(strings.Repeat(" ", padding))
			row.WriteString(" ")
			row.WriteString(charSet["Vertical"])
		}
		fmt.Fprintln(w, row.String())
	}

	fmt.Fprintln(w, topBorder.String())
	printRow(headers)
	fmt.Fprintln(w, middleBorder.String())

	for i := 0; i < len(data); i += cols {
		end := i + cols
		if end > len(data) {
			end = len(data)
		}
		// Incomplete trailing rows are padded with empty cells
		rowSlice := data[i:end]
		if len(rowSlice) < cols {
			filled := make([]string, cols)
			copy(filled, rowSlice)
			rowSlice = filled
		}
		printRow(rowSlice)
	}

	fmt.Fprintln(w, bottomBorder.String())
}
