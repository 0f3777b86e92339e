// Package sheetgrid lays player stat sections out on a spreadsheet grid.
// Everything here is pure: the engine reads a cell matrix and emits plan
// value objects, it never performs I/O.
package sheetgrid

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// SectionHeight is the full height of a section including the spacer row
	SectionHeight = 15

	// SectionWidth is the number of columns a section spans
	SectionWidth = 5

	// DataRows is the number of Pokemon rows a section can hold
	DataRows = 12

	// FirstBandRow is the sheet row of the first band's name cells
	FirstBandRow = 2
)

// sectionCols are the zero-based column indexes of the four sections per
// band: columns B, G, L and Q.
var sectionCols = []int{1, 6, 11, 16}

// HeaderRow is the literal second row of every valid section.
var HeaderRow = []string{"Pokemon", "Games Played", "Kills", "Deaths"}

// Cell is a zero-based column paired with a one-based sheet row.
type Cell struct {
	Col int
	Row int
}

// String renders the cell in A1 notation.
func (c Cell) String() string {
	return ColumnLetter(c.Col) + strconv.Itoa(c.Row)
}

// ColumnLetter converts a zero-based column index to its letter form.
func ColumnLetter(col int) string {
	letters := ""
	for col >= 0 {
		letters = string(rune('A'+col%26)) + letters
		col = col/26 - 1
	}
	return letters
}

// RangeRef renders an A1 range covering rows [top, bottom] over the section
// width starting at col.
func RangeRef(col, top, bottom int) string {
	return fmt.Sprintf("%s%d:%s%d",
		ColumnLetter(col), top, ColumnLetter(col+SectionWidth-1), bottom)
}

// Row is one Pokemon line read out of a section, pinned to its sheet row.
type Row struct {
	SheetRow int
	Species  string
	Games    int
	Kills    int
	Deaths   int
}

// Section is a player's 15x5 block as read from the sheet.
type Section struct {
	// TopRow is the one-based sheet row of the name cell
	TopRow int

	// Col is the zero-based column index of the section's left edge
	Col int

	// Name is the merged player-name cell
	Name string

	// Rows are the populated data rows in sheet order
	Rows []Row
}

// Origin returns the section's top-left cell.
func (s *Section) Origin() Cell {
	return Cell{Col: s.Col, Row: s.TopRow}
}

// firstDataRow is the sheet row of the section's first Pokemon line.
func (s *Section) firstDataRow() int {
	return s.TopRow + 2
}

// cellAt reads a cell from the matrix, tolerating ragged and short rows.
func cellAt(values [][]string, sheetRow, col int) string {
	r := sheetRow - 1
	if r < 0 || r >= len(values) {
		return ""
	}
	if col < 0 || col >= len(values[r]) {
		return ""
	}
	return values[r][col]
}

// isValidSection reports whether the section anchored at (topRow, col) has a
// non-empty name cell and the exact literal header row.
func isValidSection(values [][]string, topRow, col int) bool {
	if strings.TrimSpace(cellAt(values, topRow, col)) == "" {
		return false
	}
	for i, want := range HeaderRow {
		if cellAt(values, topRow+1, col+i) != want {
			return false
		}
	}
	return true
}

// NextCell returns the top-left cell of the first section that is not fully
// initialized, scanning bands top-down and sections left-to-right. When
// every section in the populated bands is valid, the first section of a
// fresh band is returned.
func NextCell(values [][]string) Cell {
	// Past the populated area every section is invalid, so the scan always
	// terminates within one band of the matrix edge.
	for band := 0; ; band++ {
		topRow := FirstBandRow + band*SectionHeight

		for _, col := range sectionCols {
			if !isValidSection(values, topRow, col) {
				return Cell{Col: col, Row: topRow}
			}
		}
	}
}

// ParseSection reads the section anchored at origin out of the matrix.
func ParseSection(values [][]string, origin Cell) *Section {
	section := &Section{
		TopRow: origin.Row,
		Col:    origin.Col,
		Name:   strings.TrimSpace(cellAt(values, origin.Row, origin.Col)),
	}

	for i := 0; i < DataRows; i++ {
		sheetRow := section.firstDataRow() + i
		species := strings.TrimSpace(cellAt(values, sheetRow, origin.Col))
		if species == "" {
			continue
		}

		section.Rows = append(section.Rows, Row{
			SheetRow: sheetRow,
			Species:  species,
			Games:    atoiOrZero(cellAt(values, sheetRow, origin.Col+1)),
			Kills:    atoiOrZero(cellAt(values, sheetRow, origin.Col+2)),
			Deaths:   atoiOrZero(cellAt(values, sheetRow, origin.Col+3)),
		})
	}

	return section
}

// FindSection locates the valid section whose name cell equals playerName.
func FindSection(values [][]string, playerName string) (*Section, bool) {
	for _, section := range ListSections(values) {
		if section.Name == playerName {
			return section, true
		}
	}
	return nil, false
}

// ListSections enumerates every valid section in row-major order.
func ListSections(values [][]string) []*Section {
	var sections []*Section

	for band := 0; ; band++ {
		topRow := FirstBandRow + band*SectionHeight
		if topRow > len(values) {
			return sections
		}

		for _, col := range sectionCols {
			if isValidSection(values, topRow, col) {
				sections = append(sections, ParseSection(values, Cell{Col: col, Row: topRow}))
			}
		}
	}
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
