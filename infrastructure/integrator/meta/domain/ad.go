package metadomain

type Ad struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Status   string    `json:"status"`
	Creative *Creative `json:"creative"`
}

type Creative struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ImageHash    string `json:"image_hash"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// ImageRendition é uma das renderizações disponíveis de uma imagem de
// criativo, listada pela consulta secundária de assets
type ImageRendition struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Source string `json:"source"`
}

type ImageData struct {
	Hash   string           `json:"hash"`
	Images []ImageRendition `json:"images"`
}
