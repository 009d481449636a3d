package models

// StatusReport - агрегированный срез состояния, вычисляемый по запросу
type StatusReport struct {
	OpenIncidentCount   int            `json:"open_incident_count"`
	TotalAlertCount     int            `json:"total_alert_count"`
	ActiveUsersLast24h  int            `json:"active_users_last_24h"`
	IncidentCountByType map[string]int `json:"incident_count_by_type"`
}
