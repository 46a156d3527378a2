package metadomain

type Campaign struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Objective      string `json:"objective"`
	Status         string `json:"status"`
	DailyBudget    string `json:"daily_budget"`
	LifetimeBudget string `json:"lifetime_budget"`
	CreatedTime    string `json:"created_time"`
	UpdatedTime    string `json:"updated_time"`
	StartTime      string `json:"start_time"`
	StopTime       string `json:"stop_time"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next"`
}

// HasNext informa se a plataforma reportou mais uma página além da consultada
func (p Paging) HasNext() bool {
	return p.Next != ""
}
