package models

// GlobalConfig is the single config document. TimeLeftForKBS is a tagged
// union in the store: NULL, an RFC3339 instant, or an arbitrary string kept
// verbatim because it never parsed as a time.
type GlobalConfig struct {
	Key            string  `gorm:"primaryKey;size:32" json:"key"`
	TimeLeftForKBS *string `gorm:"column:timeleftforkbs" json:"timeleftforkbs"`
}

func (GlobalConfig) TableName() string {
	return "config"
}

// GlobalConfigKey is the fixed id of the only config document.
const GlobalConfigKey = "global"
