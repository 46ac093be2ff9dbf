package entity

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusTied       Status = "tied"
)

func (that Status) IsFinished() bool {
	return that == StatusWon || that == StatusTied
}
