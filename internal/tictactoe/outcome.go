package tictactoe

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
	StatusDraw    Status = "draw"
)

// Outcome - the result reported after a move.
type Outcome struct {
	Status Status
	Winner Mark
}

func ongoing() Outcome {
	return Outcome{Status: StatusOngoing}
}

func won(winner Mark) Outcome {
	return Outcome{Status: StatusWon, Winner: winner}
}

func draw() Outcome {
	return Outcome{Status: StatusDraw}
}

func (that Outcome) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

func (that Outcome) String() string {
	switch that.Status {
	case StatusWon:
		return that.Winner.String() + " is the winner!"
	case StatusDraw:
		return "It's a draw!"
	default:
		return "Next players turn"
	}
}
