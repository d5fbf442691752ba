package model

import (
	"time"

	"gorm.io/datatypes"
)

// MovieModel mirrors the 'movies' table, a local copy of provider
// metadata. Genres are stored as a JSON array of resolved names.
type MovieModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	TMDBID       int64  `gorm:"column:tmdb_id;unique;not null"`
	Title        string `gorm:"type:varchar(500);not null;index"`
	Overview     string `gorm:"type:text"`
	PosterPath   string `gorm:"type:varchar(255)"`
	BackdropPath string `gorm:"type:varchar(255)"`
	ReleaseDate  string `gorm:"type:varchar(20)"`
	VoteAverage  float64
	VoteCount    int64
	Popularity   float64        `gorm:"index"`
	Genres       datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (MovieModel) TableName() string {
	return "movies"
}
