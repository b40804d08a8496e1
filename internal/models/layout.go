package models

// Layout is the static page description. Built once at startup.
type Layout struct {
	Title      string            `json:"title"`
	TitleStyle map[string]string `json:"title_style"`
	Dropdown   Dropdown          `json:"dropdown"`
	Slider     RangeSlider       `json:"slider"`
	Graphs     []Graph           `json:"graphs"`
}

// Option is a dropdown entry.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Dropdown struct {
	ID          string   `json:"id"`
	Options     []Option `json:"options"`
	Value       string   `json:"value"`
	Placeholder string   `json:"placeholder"`
	Searchable  bool     `json:"searchable"`
}

// Mark is a labelled slider tick.
type Mark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

type RangeSlider struct {
	ID    string       `json:"id"`
	Min   float64      `json:"min"`
	Max   float64      `json:"max"`
	Step  float64      `json:"step"`
	Marks []Mark       `json:"marks"`
	Value PayloadRange `json:"value"`
}

// Graph is a chart placeholder on the page.
type Graph struct {
	ID string `json:"id"`
}
