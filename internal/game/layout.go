package game

// The betting layout is a 3-row by 12-column grid of pockets 1-36 laid out
// in column-major triples (1,2,3 / 4,5,6 / ...), with the zero field
// straddling the first triple. All placement rules below are closed-form
// arithmetic on pocket values rather than lookups in an adjacency table:
// row position is (n-1)%3, right-column pockets are the multiples of 3.

// NumPockets is the number of pockets on a European wheel (0-36).
const NumPockets = 37

// Color is a pocket's color on the wheel.
type Color int

const (
	ColorGreen Color = iota
	ColorRed
	ColorBlack
)

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorBlack:
		return "black"
	default:
		return "green"
	}
}

// redPockets is the standard wheel assignment: 18 red, 18 black, zero green.
var redPockets = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true,
	12: true, 14: true, 16: true, 18: true, 19: true,
	21: true, 23: true, 25: true, 27: true, 30: true,
	32: true, 34: true, 36: true,
}

// PocketColor returns the color of a pocket. Zero is green; out-of-range
// values are treated as black, but callers validate pockets first.
func PocketColor(n int) Color {
	if n == 0 {
		return ColorGreen
	}
	if redPockets[n] {
		return ColorRed
	}
	return ColorBlack
}

// ValidPlacement reports whether the picks form a legal placement of the
// given kind on the layout. It is total: any kind/picks combination yields
// an answer, never a panic. Number picks are expected in ascending order,
// as on the wire.
func ValidPlacement(kind BetKind, picks []int) bool {
	switch kind {
	case Straight:
		return len(picks) == 1 && picks[0] >= 0 && picks[0] <= 36
	case Split:
		return len(picks) == 2 && validSplit(picks[0], picks[1])
	case Street:
		return len(picks) == 3 && validStreet(picks[0], picks[1], picks[2])
	case Basket:
		return len(picks) == 3 && picks[0] == 0 &&
			((picks[1] == 1 && picks[2] == 2) || (picks[1] == 2 && picks[2] == 3))
	case Topline:
		return len(picks) == 4 &&
			picks[0] == 0 && picks[1] == 1 && picks[2] == 2 && picks[3] == 3
	case Corner:
		return len(picks) == 4 && validCorner(picks)
	case DoubleLine:
		return len(picks) == 6 &&
			validStreet(picks[0], picks[1], picks[2]) &&
			validStreet(picks[3], picks[4], picks[5]) &&
			picks[3] == picks[0]+3
	case Dozens, Columns:
		return len(picks) == 1 && picks[0] >= 1 && picks[0] <= 3
	case EvenOdd, HighLow, RedBlack:
		return len(picks) == 1 && (picks[0] == 0 || picks[0] == 1)
	}
	return false
}

// validSplit checks two-pocket adjacency. Horizontal neighbours differ by 1
// and the lower pocket must not sit in the right column; vertical neighbours
// differ by 3. The three zero splits are fixed. 36 pairs only with 35.
func validSplit(a, b int) bool {
	if a < 0 || a >= b || b > 36 {
		return false
	}
	if a == 0 {
		return b <= 3
	}
	switch b - a {
	case 1:
		return a%3 != 0
	case 3:
		return a <= 32
	}
	return false
}

// validStreet checks for one full row: a row starts where (n-1)%3 == 0.
func validStreet(a, b, c int) bool {
	return a >= 1 && a <= 34 && (a-1)%3 == 0 && b == a+1 && c == a+2
}

// validCorner checks a 2x2 block anchored at its lowest pocket. The anchor
// must not be a right-column pocket and the block must fit on the grid.
func validCorner(p []int) bool {
	a := p[0]
	return a >= 1 && a <= 32 && a%3 != 0 &&
		p[1] == a+1 && p[2] == a+3 && p[3] == a+4
}
