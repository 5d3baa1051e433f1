package postgres

// LeadModel é o model GORM para leads.
// CreatedAt usa nanossegundos para que a ordem de listagem seja a ordem
// de inserção, estável mesmo com vários leads no mesmo segundo.
type LeadModel struct {
	ID        string  `gorm:"type:uuid;primaryKey"`
	Nome      string  `gorm:"type:varchar(500);not null"`
	Email     string  `gorm:"type:varchar(255);not null;index"`
	Telefone  string  `gorm:"type:varchar(50);not null"`
	Status    string  `gorm:"type:varchar(50);not null;index"`
	Fonte     string  `gorm:"type:varchar(100);not null"`
	Notas     *string `gorm:"type:text"`
	CreatedAt int64   `gorm:"autoCreateTime:nano;index"`
	UpdatedAt *int64  // somente em mutações de status/notas, nunca no insert
}

func (LeadModel) TableName() string {
	return "leads"
}

// AdminModel é o model GORM para administradores
type AdminModel struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Nome         string `gorm:"type:varchar(500);not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    int64  `gorm:"autoCreateTime"`
}

func (AdminModel) TableName() string {
	return "admin_users"
}
