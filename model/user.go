package model

import "time"

type User struct {
	Id           uint32 `storm:"id,increment"`
	Email        string `storm:"unique"`
	PasswordHash []byte
	CreatedAt    time.Time
}

//Session is a live sign-in. It is created at sign-in, deleted at sign-out
//and swept by the service cleanup loop once its TTL passes.
type Session struct {
	Id        uint32    `storm:"id,increment"`
	Token     string    `storm:"unique"`
	OwnerId   uint32    `storm:"index"`
	CreatedAt time.Time `storm:"index"`
}
