package aggregating

import (
	"github.com/vfg2006/ad-performance-api/internal/domain"
)

// BuildTimeWindow monta a janela temporal da consulta. O par explícito só é
// usado quando as duas datas foram informadas; com uma só (ou nenhuma), a
// janela cai no preset padrão da plataforma. As datas são repassadas como
// chegaram, sem validação local: quem valida formato é a própria plataforma.
func BuildTimeWindow(startDate, endDate, fallbackPreset string) *domain.TimeWindow {
	if startDate != "" && endDate != "" {
		return &domain.TimeWindow{
			Since: startDate,
			Until: endDate,
		}
	}

	return &domain.TimeWindow{Preset: fallbackPreset}
}
