package domain

// Campaign representa uma campanha da conta de anúncios com seus anúncios e
// métricas já agregados. Insights e Ads são preenchidos após o fetch;
// ausência (nil/vazio) é um estado terminal legítimo, não um erro.
type Campaign struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Objective      string        `json:"objective,omitempty"`
	Status         string        `json:"status,omitempty"`
	DailyBudget    string        `json:"daily_budget,omitempty"`
	LifetimeBudget string        `json:"lifetime_budget,omitempty"`
	CreatedTime    string        `json:"created_time,omitempty"`
	UpdatedTime    string        `json:"updated_time,omitempty"`
	StartTime      string        `json:"start_time,omitempty"`
	StopTime       string        `json:"stop_time,omitempty"`
	Insights       MetricsRecord `json:"insights"`
	Ads            []*Ad         `json:"ads"`
}
