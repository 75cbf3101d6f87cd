package models

// UserRecord is one document of the login collection. The id is the identity
// uid; flags absent in the store read back as false.
type UserRecord struct {
	ID           string `gorm:"primaryKey;size:128" json:"id"`
	Name         string `gorm:"size:255" json:"name"`
	Email        string `gorm:"size:255;index" json:"email"`
	IsAdmin      bool   `gorm:"column:isadmin" json:"isAdmin"`
	PostApproval bool   `gorm:"column:postapproval" json:"postapproval"`
	PostEdit     bool   `gorm:"column:postedit" json:"postedit"`
	PostDelete   bool   `gorm:"column:postdelete" json:"postdelete"`
	PostVisible  bool   `gorm:"column:postvisible" json:"postvisible"`
	KBSQuiz      bool   `gorm:"column:kbsquiz" json:"kbsquiz"`
	BhajanQuiz   bool   `gorm:"column:bhajanquiz" json:"bhajanquiz"`
}

func (UserRecord) TableName() string {
	return "login"
}

// UserFlags carries the six per-user toggles. A row save writes these columns
// and nothing else.
type UserFlags struct {
	PostApproval bool `json:"postapproval"`
	PostEdit     bool `json:"postedit"`
	PostDelete   bool `json:"postdelete"`
	PostVisible  bool `json:"postvisible"`
	KBSQuiz      bool `json:"kbsquiz"`
	BhajanQuiz   bool `json:"bhajanquiz"`
}

// Columns maps the toggles to their store field names.
func (f UserFlags) Columns() map[string]interface{} {
	return map[string]interface{}{
		"postapproval": f.PostApproval,
		"postedit":     f.PostEdit,
		"postdelete":   f.PostDelete,
		"postvisible":  f.PostVisible,
		"kbsquiz":      f.KBSQuiz,
		"bhajanquiz":   f.BhajanQuiz,
	}
}
