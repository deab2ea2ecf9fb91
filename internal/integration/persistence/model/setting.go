package model

// SettingModel represents one key/value row of the settings table.
type SettingModel struct {
	Key   string `gorm:"column:key;type:text;primaryKey"`
	Value string `gorm:"column:value;type:text"`
}

// TableName returns the table name for the SettingModel.
func (SettingModel) TableName() string {
	return "settings"
}
