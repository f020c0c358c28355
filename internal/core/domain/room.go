package domain

type Room struct {
	ID          string `json:"id" bson:"_id"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description,omitempty"`
	Capacity    *int   `json:"capacity" bson:"capacity,omitempty"`
}

type RoomPatch struct {
	Name        *string
	Description *string
	Capacity    *int
}
