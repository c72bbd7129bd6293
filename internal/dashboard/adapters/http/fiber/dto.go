package fiber

type ActivatedResponse struct {
	Activated bool `json:"activated"`
}

type DailyStatItem struct {
	Day      string `json:"day" example:"2026-08-01T00:00:00Z"`
	Sessions int64  `json:"sessions"`
	Visitors int64  `json:"visitors"`
}

type StatsResponse struct {
	Stats []DailyStatItem `json:"stats"`
}

type CrashGroupItem struct {
	ID            string `json:"id"`
	Signature     string `json:"signature"`
	FirstAt       string `json:"first_at"`
	LastAt        string `json:"last_at"`
	SessionCount  int64  `json:"session_count"`
	ActivityCount int64  `json:"activity_count"`
}

type CrashesResponse struct {
	Crashes []CrashGroupItem `json:"crashes"`
}

type GoalGroupItem struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	FirstAt       string `json:"first_at"`
	LastAt        string `json:"last_at"`
	SessionCount  int64  `json:"session_count"`
	ActivityCount int64  `json:"activity_count"`
}

type GoalsResponse struct {
	Goals []GoalGroupItem `json:"goals"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_app_id"`
	Message string `json:"message,omitempty"`
}
