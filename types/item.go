package types

type Action string

const (
	AddEmployee    Action = "AddEmployee"
	ModifyEmployee Action = "ModifyEmployee"
	RemoveEmployee Action = "RemoveEmployee"
	GetPosition    Action = "GetPosition"
	ListEmployees  Action = "ListEmployees"
	Next           Action = "Next"
	Back           Action = "Back"
	Current        Action = "Current"
	DeleteCurrent  Action = "DeleteCurrent"
	ApplyFilter    Action = "ApplyFilter"
	ClearFilter    Action = "ClearFilter"
)

// Item is one command sent through the queue.
type Item struct {
	Action   Action `json:"action"`
	Employee *Draft `json:"employee,omitempty"`
	Year     int    `json:"year,omitempty"`
}
