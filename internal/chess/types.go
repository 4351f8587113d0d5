package chess

// MoveResult is the collaborator-facing summary of one executed
// move, serialized for renderers, AI providers and persistence.
type MoveResult struct {
	From      string `json:"from"`
	To        string `json:"to"`
	SAN       string `json:"san"`
	FEN       string `json:"fen"`
	Check     bool   `json:"check"`
	Checkmate bool   `json:"checkmate"`
	Draw      bool   `json:"draw"`
	GameOver  bool   `json:"gameOver"`
	Result    string `json:"result"`
}

// DrawMethod names how a game was, or could be, drawn.
type DrawMethod string

const (
	DrawStalemate            DrawMethod = "Stalemate"
	DrawFiftyMoveRule        DrawMethod = "FiftyMoveRule"
	DrawThreefoldRepetition  DrawMethod = "ThreefoldRepetition"
	DrawInsufficientMaterial DrawMethod = "InsufficientMaterial"
)

// Game score strings in PGN result notation.
const (
	ResultWhiteWon = "1-0"
	ResultBlackWon = "0-1"
	ResultDraw     = "1/2-1/2"
)
