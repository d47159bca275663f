package models

// Ordem is a service order: one repair job for one client.
//
// Data holds a calendar date only (YYYY-MM-DD, assigned server-side at
// creation); the lexicographic order of that format matches chronological
// order, which the latest-order aggregation relies on.
type Ordem struct {
	ID          string  `gorm:"primaryKey;size:36" json:"id"`
	InfoProduto string  `gorm:"type:text" json:"info_produto"`
	Defeito     string  `gorm:"type:text" json:"defeito"`
	Solucao     string  `gorm:"type:text" json:"solucao"`
	Garantia    *bool   `json:"garantia"` // nullable, older rows never set it
	Data        string  `gorm:"size:10;not null;index" json:"data"`
	Orcamento   float64 `json:"orcamento"`

	FkClienteID   string   `gorm:"column:fk_cliente_id;size:36;not null;index" json:"fk_cliente_id"`
	Cliente       *Cliente `gorm:"foreignKey:FkClienteID" json:"cliente,omitempty"`
	FkCategoriaID uint     `gorm:"column:fk_categoria_id" json:"fk_categoria_id"`
	FkStatusID    uint     `gorm:"column:fk_status_id" json:"fk_status_id"`
}

func (Ordem) TableName() string {
	return "ordem"
}
