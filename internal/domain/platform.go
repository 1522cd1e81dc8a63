package domain

type Platform struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"not null"`
	Year int    `json:"year" gorm:"not null"`

	Href string `json:"href,omitempty" gorm:"-"`
}

func (Platform) TableName() string {
	return "platforms"
}
