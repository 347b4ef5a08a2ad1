// Package model provides the player shot record model.
package model

import "time"

// PlayerShot is one row of the player_shots table: a single field-goal attempt.
type PlayerShot struct {
	ShotID           int64     `gorm:"primaryKey;column:shot_id" json:"shot_id"`
	GameID           string    `gorm:"column:game_id;type:varchar(16);not null" json:"game_id"`
	GameDate         time.Time `gorm:"column:game_date;type:date;not null" json:"game_date"`
	PlayerName       string    `gorm:"column:player_name;type:varchar(64);not null;index" json:"player_name"`
	TeamName         string    `gorm:"column:team_name;type:varchar(64)" json:"team_name"`
	Period           int       `gorm:"column:period;not null" json:"period"`
	MinutesRemaining int       `gorm:"column:minutes_remaining" json:"minutes_remaining"`
	SecondsRemaining int       `gorm:"column:seconds_remaining" json:"seconds_remaining"`
	ActionType       string    `gorm:"column:action_type;type:varchar(64)" json:"action_type"`
	ShotType         string    `gorm:"column:shot_type;type:varchar(32)" json:"shot_type"`
	ShotZone         string    `gorm:"column:shot_zone;type:varchar(64)" json:"shot_zone"`
	ShotDistance     int       `gorm:"column:shot_distance" json:"shot_distance"`
	LocX             int       `gorm:"column:loc_x" json:"loc_x"`
	LocY             int       `gorm:"column:loc_y" json:"loc_y"`
	ShotMadeFlag     bool      `gorm:"column:shot_made_flag" json:"shot_made_flag"`
}

// TableName specifies the table name for GORM.
func (PlayerShot) TableName() string {
	return "player_shots"
}

// Summary aggregates made and attempted shots.
type Summary struct {
	Attempts int
	Made     int
}

// Summarize counts attempts and makes across shots.
func Summarize(shots []PlayerShot) Summary {
	var s Summary
	for _, shot := range shots {
		s.Attempts++
		if shot.ShotMadeFlag {
			s.Made++
		}
	}
	return s
}

// Pct returns the made fraction, 0 when there were no attempts.
func (s Summary) Pct() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Made) / float64(s.Attempts)
}
