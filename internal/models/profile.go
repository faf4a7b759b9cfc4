package models

import "strings"

// 플랜 생성용 사용자 프로필, 요청 한 번 동안만 존재
type Profile struct {
	Name     string `json:"name" example:"Alex"`
	Age      string `json:"age" example:"30"`
	Gender   string `json:"gender" example:"male"`
	Height   string `json:"height" example:"180"`
	Weight   string `json:"weight" example:"80"`
	Goal     string `json:"goal" example:"muscle-gain"`
	Level    string `json:"level" example:"intermediate"`
	Location string `json:"location" example:"gym"`
	Diet     string `json:"diet" example:"non-veg"`
}

// Normalize trims surrounding whitespace from every field.
func (p Profile) Normalize() Profile {
	return Profile{
		Name:     strings.TrimSpace(p.Name),
		Age:      strings.TrimSpace(p.Age),
		Gender:   strings.TrimSpace(p.Gender),
		Height:   strings.TrimSpace(p.Height),
		Weight:   strings.TrimSpace(p.Weight),
		Goal:     strings.TrimSpace(p.Goal),
		Level:    strings.TrimSpace(p.Level),
		Location: strings.TrimSpace(p.Location),
		Diet:     strings.TrimSpace(p.Diet),
	}
}
