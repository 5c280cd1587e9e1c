// Package console is the terminal frontend: it renders the board and reads the
// human player's moves from a line-oriented input.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/peterkuimelis/cardbattle/internal/game"
	"github.com/peterkuimelis/cardbattle/internal/view"
)

const cellWidth = 20

// Console implements game.Controller over a reader/writer pair.
type Console struct {
	in  *bufio.Reader
	out io.Writer

	human    *color.Color
	computer *color.Color
	hot      *color.Color
	cold     *color.Color
	bold     *color.Color
}

// New creates a console reading moves from in and rendering to out.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:       bufio.NewReader(in),
		out:      out,
		human:    color.New(color.FgGreen),
		computer: color.New(color.FgRed),
		hot:      color.New(color.FgYellow),
		cold:     color.New(color.FgCyan),
		bold:     color.New(color.Bold),
	}
}

// DisableColor turns off ANSI colouring (for non-terminals and tests).
func (c *Console) DisableColor() {
	for _, col := range []*color.Color{c.human, c.computer, c.hot, c.cold, c.bold} {
		col.DisableColor()
	}
}

// ChooseMove implements game.Controller. It renders the board and the hand,
// then reads "card row col" until the input names a hand card and an empty cell.
func (c *Console) ChooseMove(ctx context.Context, board *game.Board, player *game.Player) (game.Move, error) {
	c.RenderBoard(view.BuildStateView(board, player))
	c.renderHand(player)
	for {
		if err := ctx.Err(); err != nil {
			return game.Move{}, err
		}
		fmt.Fprintf(c.out, "%s's move: enter card [1-%d], row [0-4] and column [0-4] (e.g. \"1 2 3\"): ", player.Name, player.HandCount())
		line, err := c.readLine()
		if err != nil {
			return game.Move{}, err
		}
		mv, err := parseMove(line, board, player)
		if err != nil {
			fmt.Fprintf(c.out, "%v\n", err)
			continue
		}
		return mv, nil
	}
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// parseMove validates "card row col" against the hand and the grid.
func parseMove(line string, board *game.Board, player *game.Player) (game.Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return game.Move{}, fmt.Errorf("please enter three numbers: card row column")
	}
	nums := make([]int, 3)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return game.Move{}, fmt.Errorf("%q is not a number", f)
		}
		nums[i] = n
	}
	cardNum, row, col := nums[0], nums[1], nums[2]
	if cardNum < 1 || cardNum > player.HandCount() {
		return game.Move{}, fmt.Errorf("please enter a valid card number [1-%d]", player.HandCount())
	}
	occupant, err := board.CardAt(row, col)
	if err != nil {
		return game.Move{}, fmt.Errorf("please enter a valid cell (row and column 0-4)")
	}
	if occupant != nil {
		return game.Move{}, fmt.Errorf("cell (%d,%d) is occupied, please choose another", row, col)
	}
	return game.Move{Card: player.Hand[cardNum-1], Row: row, Col: col}, nil
}

// AskDifficulty prompts until a valid difficulty is entered.
func (c *Console) AskDifficulty() (game.Difficulty, error) {
	for {
		fmt.Fprint(c.out, "Choose a difficulty (Easy, Medium, Hard): ")
		line, err := c.readLine()
		if err != nil {
			return game.DifficultyEasy, err
		}
		d, err := game.ParseDifficulty(line)
		if err == nil {
			return d, nil
		}
		fmt.Fprintln(c.out, "Please type Easy, Medium or Hard.")
	}
}

// AskPlayAgain prompts for y/n until one is given.
func (c *Console) AskPlayAgain() (bool, error) {
	for {
		fmt.Fprint(c.out, "Would you like to play again (y/n)? ")
		line, err := c.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(c.out, "Please type y for \"yes\" or n for \"no\".")
	}
}

// ShowResult prints the end-of-match banner.
func (c *Console) ShowResult(m *game.Match) {
	c.RenderBoard(view.BuildMatchView(m))
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "═══════════════════════════════════")
	c.bold.Fprintln(c.out, "          GAME OVER")
	fmt.Fprintln(c.out, "═══════════════════════════════════")
	fmt.Fprintln(c.out, m.Result())
	fmt.Fprintln(c.out, "═══════════════════════════════════")
}

// RenderBoard draws the grid and both players' HP.
func (c *Console) RenderBoard(sv *view.StateView) {
	if sv == nil {
		return
	}
	fmt.Fprintln(c.out)
	turn := fmt.Sprintf("Turn %d", sv.Turn)
	if sv.MaxTurns > 0 {
		turn += fmt.Sprintf("/%d", sv.MaxTurns)
	}
	c.bold.Fprintf(c.out, "%s  (%s)\n", turn, sv.Difficulty)
	fmt.Fprintf(c.out, "%s  HP %d/%d  Hand %d      %s  HP %d/%d  Hand %d      Deck %d  Discard %d\n",
		c.human.Sprint(sv.You.Name), sv.You.HP, sv.You.MaxHP, sv.You.HandCount,
		c.computer.Sprint(sv.Opponent.Name), sv.Opponent.HP, sv.Opponent.MaxHP, sv.Opponent.HandCount,
		sv.DeckCount, sv.DiscardCount)

	border := "    +" + strings.Repeat(strings.Repeat("-", cellWidth)+"+", game.BoardSize)
	header := "    "
	for col := 0; col < game.BoardSize; col++ {
		header += " " + pad(fmt.Sprintf("col %d", col), cellWidth)
	}
	fmt.Fprintln(c.out, header)
	fmt.Fprintln(c.out, border)
	for row := 0; row < game.BoardSize; row++ {
		for line := 0; line < 5; line++ {
			prefix := "    |"
			if line == 2 {
				prefix = fmt.Sprintf("  %d |", row)
			}
			var sb strings.Builder
			sb.WriteString(prefix)
			for col := 0; col < game.BoardSize; col++ {
				sb.WriteString(c.cellLine(sv.Grid[row][col], line))
				sb.WriteString("|")
			}
			fmt.Fprintln(c.out, sb.String())
		}
		fmt.Fprintln(c.out, border)
	}
}

// cellLine renders one of the five text lines of a cell.
func (c *Console) cellLine(cell view.CellView, line int) string {
	card := cell.Card
	switch line {
	case 0:
		if cell.Zone == "" {
			return pad("", cellWidth)
		}
		text := pad("* "+strings.ToUpper(cell.Zone)+" ZONE *", cellWidth)
		if cell.Zone == game.ZoneHot.String() {
			return c.hot.Sprint(text)
		}
		return c.cold.Sprint(text)
	case 1:
		if card == nil {
			return pad("", cellWidth)
		}
		return c.ownerColor(card).Sprint(pad(card.Name, cellWidth))
	case 2:
		if card == nil {
			return pad("", cellWidth)
		}
		hp := fmt.Sprintf("%d/%d HP", card.HP, card.MaxHP)
		if card.Contaminated > 0 {
			hp += " (tox)"
		}
		return pad(hp, cellWidth)
	case 3:
		if card == nil {
			return pad("", cellWidth)
		}
		return pad(fmt.Sprintf("↑%d ↓%d", card.Upper, card.Lower), cellWidth)
	default:
		if card == nil {
			return pad("", cellWidth)
		}
		return pad(fmt.Sprintf("←%d →%d %s", card.Left, card.Right, card.Type), cellWidth)
	}
}

func (c *Console) ownerColor(card *view.CardView) *color.Color {
	if card.Mine {
		return c.human
	}
	return c.computer
}

func (c *Console) renderHand(player *game.Player) {
	fmt.Fprintf(c.out, "\n%s's cards:\n", player.Name)
	for i, card := range player.Hand {
		fmt.Fprintf(c.out, "  %d. %s\n     Level %d  Type %s  HP %d  %s\n", i+1, card.Name, card.Level, card.Type, card.MaxHP, card.AP)
	}
	fmt.Fprintln(c.out)
}

// pad centers s in a field of the given width, truncating if needed.
func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width])
	}
	space := width - len(runes)
	left := space / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", space-left)
}
