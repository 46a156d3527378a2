package domain

// Ad representa um anúncio pertencente a uma campanha
type Ad struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Status   string        `json:"status,omitempty"`
	Creative *Creative     `json:"creative,omitempty"`
	Insights MetricsRecord `json:"insights"`
}

// Creative é a definição visual/textual de um anúncio. ImageHash é uma
// referência opaca que exige uma resolução secundária para obter a URL de
// exibição em alta resolução; quando a resolução falha, ResolvedImageURL
// simplesmente não é preenchido.
type Creative struct {
	ID               string `json:"id"`
	Name             string `json:"name,omitempty"`
	ImageHash        string `json:"image_hash,omitempty"`
	ThumbnailURL     string `json:"thumbnail_url,omitempty"`
	ResolvedImageURL string `json:"resolved_image_url,omitempty"`
}
