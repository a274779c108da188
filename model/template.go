package model

import "time"

//Template is a message body with {{name}}, {{amount}} and {{phone}} placeholders.
//Templates are immutable once saved.
type Template struct {
	Id        uint32 `storm:"id,increment"`
	OwnerId   uint32 `storm:"index"`
	Title     string
	Body      string
	CreatedAt time.Time `storm:"index"`
}
