package models

type MenuItem struct {
	Title       *string  `json:"title" bson:"title" validate:"required" description:"Dish name"`
	Description *string  `json:"description" bson:"description" description:"Short description"`
	Price       *float64 `json:"price" bson:"price" validate:"required,gte=0" description:"Price in INR"`
	IsAvailable *bool    `json:"is_available" bson:"is_available" default:"true" description:"Availability for today"`
	Category    *string  `json:"category" bson:"category" description:"Breakfast/Lunch/Dinner/Snacks"`
}
