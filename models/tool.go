package models

// Tool is a catalog item. Documents are loosely typed; clients can attach
// arbitrary attributes under the "extra" object. Unknown top-level keys are
// dropped at decode time.
type Tool struct {
	ToolID       string                 `json:"toolid" bson:"toolid"`
	Name         string                 `json:"name" bson:"name"`
	Description  string                 `json:"description,omitempty" bson:"description,omitempty"`
	Image        string                 `json:"image,omitempty" bson:"image,omitempty"`
	Price        float64                `json:"price" bson:"price"`
	MinOrder     int                    `json:"minOrder,omitempty" bson:"minOrder,omitempty"`
	AvailableQty int                    `json:"availableQty,omitempty" bson:"availableQty,omitempty"`
	Extra        map[string]interface{} `json:"extra,omitempty" bson:"extra,omitempty"`
}
