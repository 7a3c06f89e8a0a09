package controllers

// ProductRequest is the JSON body for create and update. StockQuantity is a
// pointer so an explicit 0 passes `required` while an absent field fails it;
// non-numeric values fail JSON binding outright.
type ProductRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description" binding:"required"`
	ImageURL      string `json:"image_url"`
	StockQuantity *int   `json:"stock_quantity" binding:"required,gte=0"`
	Category      string `json:"category" binding:"required"`
}
