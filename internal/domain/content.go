package domain

import "time"

// EducationCard is one tile of the education grid.
type EducationCard struct {
	ID        int64          `json:"id"`
	Row       int            `json:"row"`
	Col       int            `json:"col"`
	Title     string         `json:"title"`
	Text      string         `json:"text"`
	Sections  map[string]any `json:"sections"`
	Tags      []string       `json:"tags"`
	ImageSVG  string         `json:"image,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

type FunFact struct {
	ID      int64  `json:"id"`
	FunFact string `json:"fun_fact"`
}

type ChromosomeInfo struct {
	ID             int64     `json:"id"`
	ChromosomeInfo string    `json:"chromosome_info"`
	UpdatedAt      time.Time `json:"updated_at"`
}
