package model

// Constant is one row of the shared lookup table. Rows are grouped by Type
// (free-form tag) and referenced by numeric id from every *_oid column in the
// schema. The (type, id) pair is the effective lookup key; id alone is not
// unique across types.
type Constant struct {
	ID      int64   `gorm:"column:oid;primaryKey" json:"id"`
	Name    string  `gorm:"column:cnst_name;size:80" json:"cnst_name"`
	Type    *string `gorm:"column:cnst_type;size:40" json:"cnst_type"`
	NameEng *string `gorm:"column:cnst_eng;size:80" json:"cnst_eng"`
}

func (Constant) TableName() string { return "constants" }

// ConstantOption is the value/label pair served to dropdowns.
type ConstantOption struct {
	Value int64  `gorm:"column:oid" json:"value"`
	Label string `gorm:"column:cnst_name" json:"label"`
}
