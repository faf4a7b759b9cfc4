package models

import "time"

// 생성 요청 1건의 운영 기록, 프로필/플랜 내용은 저장하지 않음
type GenerationEvent struct {
	ID         int64     `json:"id"`
	RequestID  string    `json:"request_id"`
	Kind       string    `json:"kind"`
	Status     int       `json:"status"`
	ErrorKind  string    `json:"error_kind,omitempty"`
	DurationMS int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

const (
	KindPlan   = "plan"
	KindImage  = "image"
	KindSpeech = "speech"
)

type UsageSummary struct {
	Kind          string  `json:"kind" example:"plan"`
	Total         int64   `json:"total" example:"12"`
	Succeeded     int64   `json:"succeeded" example:"11"`
	Failed        int64   `json:"failed" example:"1"`
	AvgDurationMS float64 `json:"avg_duration_ms" example:"4210.5"`
}
