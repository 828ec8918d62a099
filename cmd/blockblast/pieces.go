package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-blast/internal/blast"
)

var piecesCmd = &cobra.Command{
	Use:   "pieces",
	Short: "List the piece catalog",
	Long:  `Shows every shape that can be offered, with its size and color.`,
	Args:  cobra.NoArgs,
	Run:   runPieces,
}

func runPieces(cmd *cobra.Command, args []string) {
	shapes := blast.AllShapes()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range shapes {
		maxNameLen = max(maxNameLen, len(p.Name))
	}

	fmt.Printf("Pieces (%d):\n\n", len(shapes))
	fmt.Printf("  %-*s  %5s  %4s  %s\n", maxNameLen, "Name", "Cells", "Size", "Color")
	fmt.Printf("  %-*s  %5s  %4s  %s\n", maxNameLen, "----", "-----", "----", "-----")
	for _, p := range shapes {
		w, h := p.Bounds()
		fmt.Printf("  %-*s  %5d  %4s  %s\n", maxNameLen, p.Name, p.CellCount(), fmt.Sprintf("%dx%d", w, h), p.Color)
	}

	fmt.Println()
	for _, p := range shapes {
		fmt.Println(p.Name)
		fmt.Println(pieceArt(p))
	}
}

// pieceArt draws a piece as colored blocks, two columns per cell.
func pieceArt(p *blast.Piece) string {
	block := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render("██")
	ox, oy := p.Origin()
	w, h := p.Bounds()

	var b strings.Builder
	for dy := range h {
		b.WriteString("  ")
		for dx := range w {
			if p.Has(ox+dx, oy+dy) {
				b.WriteString(block)
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// boardArt draws a board with each cell in its piece color.
func boardArt(board blast.Board) string {
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("· ")
	border := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	var b strings.Builder
	b.WriteString(border.Render("┌" + strings.Repeat("─", blast.Size*2) + "┐"))
	b.WriteString("\n")
	for row := range blast.Size {
		b.WriteString(border.Render("│"))
		for col := range blast.Size {
			if board.IsOccupied(row, col) {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(board.Cell(row, col))).Render("██"))
			} else {
				b.WriteString(empty)
			}
		}
		b.WriteString(border.Render("│"))
		b.WriteString("\n")
	}
	b.WriteString(border.Render("└" + strings.Repeat("─", blast.Size*2) + "┘"))
	return b.String()
}
