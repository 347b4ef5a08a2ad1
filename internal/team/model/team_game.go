package model

import "time"

// TeamGame is one row of the team_games table: a single game from one
// team's perspective. No page reads it yet.
type TeamGame struct {
	GameID   string    `gorm:"primaryKey;column:game_id;type:varchar(16)" json:"game_id"`
	TeamID   int       `gorm:"primaryKey;column:team_id" json:"team_id"`
	GameDate time.Time `gorm:"column:game_date;type:date" json:"game_date"`
	Matchup  string    `gorm:"column:matchup;type:varchar(32)" json:"matchup"`
	WL       *string   `gorm:"column:wl;type:char(1)" json:"wl"`
	Pts      int       `gorm:"column:pts" json:"pts"`
}

// TableName specifies the table name for GORM.
func (TeamGame) TableName() string {
	return "team_games"
}
