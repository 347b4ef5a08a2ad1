// Package model provides the team record models.
package model

// Team is one row of the teams table: a league team and its season record.
type Team struct {
	TeamID         int     `gorm:"primaryKey;column:team_id" json:"team_id"`
	TeamName       string  `gorm:"column:team_name;type:varchar(64);not null" json:"team_name"`
	TeamConference string  `gorm:"column:team_conference;type:varchar(16)" json:"team_conference"`
	TeamDivision   string  `gorm:"column:team_division;type:varchar(32);not null" json:"team_division"`
	W              int     `gorm:"column:w" json:"w"`
	L              int     `gorm:"column:l" json:"l"`
	Pct            float64 `gorm:"column:pct" json:"pct"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// GamesPlayed returns wins plus losses.
func (t Team) GamesPlayed() int {
	return t.W + t.L
}
