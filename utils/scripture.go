package utils

import "time"

type Scripture struct {
	Text      string `json:"text"`
	Reference string `json:"reference"`
}

var scriptures = []Scripture{
	{
		Text:      "Esfuérzate y sé valiente; no temas ni desmayes, porque Jehová tu Dios estará contigo",
		Reference: "Josué 1:9",
	},
	{
		Text:      "Este es el día que hizo Jehová; nos gozaremos y alegraremos en él",
		Reference: "Salmos 118:24",
	},
	{
		Text:      "En paz me acostaré y asimismo dormiré; porque solo tú, Jehová, me haces vivir confiado",
		Reference: "Salmos 4:8",
	},
	{
		Text:      "Lámpara es a mis pies tu palabra, y lumbrera a mi camino",
		Reference: "Salmos 119:105",
	},
	{
		Text:      "Confía en Jehová de todo tu corazón, y no te apoyes en tu propia prudencia",
		Reference: "Proverbios 3:5",
	},
	{
		Text:      "Mas buscad primeramente el reino de Dios y su justicia, y todas estas cosas os serán añadidas",
		Reference: "Mateo 6:33",
	},
	{
		Text:      "Todo lo puedo en Cristo que me fortalece",
		Reference: "Filipenses 4:13",
	},
}

// ScriptureOfDay rotates through the list by day of year, so every client
// sees the same verse on the same date.
func ScriptureOfDay(now time.Time) Scripture {
	return scriptures[now.YearDay()%len(scriptures)]
}
